package statistics

import (
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/ManuelWeiss/MeetFox/app/models"
	"github.com/ManuelWeiss/MeetFox/internal/pkg/cache"
	"github.com/ManuelWeiss/MeetFox/internal/pkg/database"
)

const (
	CacheKeyMeetingsTotal = "statistics:meetings:total"
	CacheKeyMeetingsDaily = "statistics:meetings:daily:%s" // Format with date YYYY-MM-DD
	CacheKeyUsers         = "statistics:users:total"
	CacheExpiration       = 30 * time.Minute
)

// StatisticsData enthält die Statistikdaten für die Übersichtsseite
type StatisticsData struct {
	TodayMeetings int
	TotalUsers    int
	TotalMeetings int
}

// Variablen für die Cache-Aktualisierungslogik
var (
	lastCacheUpdate     time.Time
	cacheUpdateMutex    sync.Mutex
	cacheUpdateInterval = 5 * time.Minute // Aktualisiere den Cache alle 5 Minuten
)

// ShouldUpdateCache prüft, ob der Cache aktualisiert werden sollte
func ShouldUpdateCache() bool {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	return time.Since(lastCacheUpdate) > cacheUpdateInterval
}

// UpdateCacheIfNeeded aktualisiert den Cache, wenn nötig
func UpdateCacheIfNeeded() {
	if ShouldUpdateCache() {
		cacheUpdateMutex.Lock()
		defer cacheUpdateMutex.Unlock()

		log.Println("Aktualisiere Statistik-Cache...")
		if err := UpdateStatisticsCache(); err != nil {
			log.Printf("Fehler beim Aktualisieren des Statistik-Caches: %v", err)
		} else {
			log.Println("Statistik-Cache erfolgreich aktualisiert")
			lastCacheUpdate = time.Now()
		}
	}
}

// ResetCacheUpdateTimer setzt den Timer für die Cache-Aktualisierung zurück
func ResetCacheUpdateTimer() {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	lastCacheUpdate = time.Time{}
}

// UpdateStatisticsCache updates all statistics in the cache
func UpdateStatisticsCache() error {
	db := database.GetDB()

	var totalMeetings int64
	if err := db.Model(&models.Meeting{}).Count(&totalMeetings).Error; err != nil {
		log.Printf("Error counting total meetings: %v", err)
		return err
	}

	// Count meetings starting today
	var todayMeetings int64
	today := time.Now().Format("2006-01-02")
	todayStart, _ := time.Parse("2006-01-02", today)
	todayEnd := todayStart.Add(24 * time.Hour)

	if err := db.Model(&models.Meeting{}).Where("start_time BETWEEN ? AND ?", todayStart, todayEnd).Count(&todayMeetings).Error; err != nil {
		log.Printf("Error counting today's meetings: %v", err)
		return err
	}

	var totalUsers int64
	if err := db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		log.Printf("Error counting total users: %v", err)
		return err
	}

	if err := cache.Set(CacheKeyMeetingsTotal, strconv.FormatInt(totalMeetings, 10), CacheExpiration); err != nil {
		log.Printf("Error caching total meetings: %v", err)
		return err
	}

	dailyKey := fmt.Sprintf(CacheKeyMeetingsDaily, today)
	if err := cache.Set(dailyKey, strconv.FormatInt(todayMeetings, 10), CacheExpiration); err != nil {
		log.Printf("Error caching today's meetings: %v", err)
		return err
	}

	if err := cache.Set(CacheKeyUsers, strconv.FormatInt(totalUsers, 10), CacheExpiration); err != nil {
		log.Printf("Error caching total users: %v", err)
		return err
	}

	log.Printf("Statistics updated in cache: Total Meetings: %d, Today's Meetings: %d, Total Users: %d",
		totalMeetings, todayMeetings, totalUsers)

	return nil
}

// GetTotalMeetings returns the total number of meetings from cache or database
func GetTotalMeetings() int {
	val, err := cache.Get(CacheKeyMeetingsTotal)
	if err != nil {
		var count int64
		db := database.GetDB()
		if err := db.Model(&models.Meeting{}).Count(&count).Error; err != nil {
			log.Printf("Error counting total meetings: %v", err)
			return 0
		}

		if err := cache.Set(CacheKeyMeetingsTotal, strconv.FormatInt(count, 10), CacheExpiration); err != nil {
			log.Printf("Error caching total meetings: %v", err)
		}

		return int(count)
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0
	}

	return int(count)
}

// GetTodayMeetings returns the number of meetings starting today from cache or database
func GetTodayMeetings() int {
	today := time.Now().Format("2006-01-02")
	dailyKey := fmt.Sprintf(CacheKeyMeetingsDaily, today)

	val, err := cache.Get(dailyKey)
	if err != nil {
		var count int64
		db := database.GetDB()
		todayStart, _ := time.Parse("2006-01-02", today)
		todayEnd := todayStart.Add(24 * time.Hour)

		if err := db.Model(&models.Meeting{}).Where("start_time BETWEEN ? AND ?", todayStart, todayEnd).Count(&count).Error; err != nil {
			log.Printf("Error counting today's meetings: %v", err)
			return 0
		}

		if err := cache.Set(dailyKey, strconv.FormatInt(count, 10), CacheExpiration); err != nil {
			log.Printf("Error caching today's meetings: %v", err)
		}

		return int(count)
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0
	}

	return int(count)
}

// GetTotalUsers returns the total number of users from cache or database
func GetTotalUsers() int {
	val, err := cache.Get(CacheKeyUsers)
	if err != nil {
		var count int64
		db := database.GetDB()
		if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
			log.Printf("Error counting total users: %v", err)
			return 0
		}

		if err := cache.Set(CacheKeyUsers, strconv.FormatInt(count, 10), CacheExpiration); err != nil {
			log.Printf("Error caching total users: %v", err)
		}

		return int(count)
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0
	}

	return int(count)
}

// GetStatisticsData returns all statistics data as StatisticsData structure
func GetStatisticsData() StatisticsData {
	// Aktualisiere den Cache bei Bedarf
	UpdateCacheIfNeeded()

	return StatisticsData{
		TodayMeetings: GetTodayMeetings(),
		TotalUsers:    GetTotalUsers(),
		TotalMeetings: GetTotalMeetings(),
	}
}
