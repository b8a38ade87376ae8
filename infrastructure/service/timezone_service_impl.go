package service

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/farkasdvd/indicator-datetime/domain"
	"github.com/farkasdvd/indicator-datetime/domain/repository"
	"github.com/farkasdvd/indicator-datetime/domain/valueobject"
	"github.com/farkasdvd/indicator-datetime/infrastructure/config"
)

// TimezoneServiceImpl implements the TimezoneService interface. It detects
// the system timezone once, honors a configured override, and caches named
// zone lookups.
type TimezoneServiceImpl struct {
	config *config.AppConfig
	logger domain.Logger

	mu        sync.RWMutex
	system    *time.Location
	method    string
	zoneCache map[string]*time.Location
}

// NewTimezoneServiceImpl creates a new instance of TimezoneServiceImpl
func NewTimezoneServiceImpl(cfg *config.AppConfig, logger domain.Logger) *TimezoneServiceImpl {
	return &TimezoneServiceImpl{
		config:    cfg,
		logger:    logger,
		zoneCache: make(map[string]*time.Location),
	}
}

// SystemTimezone returns the detected system timezone
func (s *TimezoneServiceImpl) SystemTimezone() (*time.Location, error) {
	s.mu.RLock()
	if s.system != nil {
		loc := s.system
		s.mu.RUnlock()
		return loc, nil
	}
	s.mu.RUnlock()

	return s.detectSystemTimezone()
}

// EffectiveTimezone returns the configured override when set, otherwise
// the detected system timezone
func (s *TimezoneServiceImpl) EffectiveTimezone() (*time.Location, error) {
	if s.config != nil && s.config.Timezone != nil && s.config.Timezone.Name != "" {
		loc, err := s.Resolve(s.config.Timezone.Name)
		if err == nil {
			return loc, nil
		}
		s.logger.Warn(context.Background(), "Configured timezone is invalid, falling back to system zone",
			domain.NewField("timezone", s.config.Timezone.Name),
			domain.NewField("error", err.Error()))
	}
	return s.SystemTimezone()
}

// Resolve loads a timezone by IANA name, caching successful lookups
func (s *TimezoneServiceImpl) Resolve(name string) (*time.Location, error) {
	s.mu.RLock()
	if loc, ok := s.zoneCache[name]; ok {
		s.mu.RUnlock()
		return loc, nil
	}
	s.mu.RUnlock()

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, domain.ErrTimezoneParse(name, err)
	}

	s.mu.Lock()
	s.zoneCache[name] = loc
	s.mu.Unlock()

	return loc, nil
}

// Now returns the current instant in the effective timezone
func (s *TimezoneServiceImpl) Now() valueobject.DateTime {
	loc, err := s.EffectiveTimezone()
	if err != nil {
		loc = time.UTC
	}
	t := time.Now().In(loc)
	return valueobject.NewDateTime(loc, &t)
}

// Info returns timezone information for logging and display
func (s *TimezoneServiceImpl) Info() repository.TimezoneInfo {
	loc, err := s.EffectiveTimezone()
	if err != nil {
		return repository.TimezoneInfo{
			Name:            "UTC",
			Offset:          "+00:00",
			DetectionMethod: "fallback",
		}
	}

	method := "config"
	if s.config == nil || s.config.Timezone == nil || s.config.Timezone.Name == "" {
		s.mu.RLock()
		method = s.method
		s.mu.RUnlock()
		if method == "" {
			method = "system"
		}
	}

	now := time.Now().In(loc)
	_, offset := now.Zone()

	sign := "+"
	abs := offset
	if abs < 0 {
		sign = "-"
		abs = -abs
	}
	offsetStr := fmt.Sprintf("%s%02d:%02d", sign, abs/3600, (abs%3600)/60)

	return repository.TimezoneInfo{
		Name:            loc.String(),
		Offset:          offsetStr,
		OffsetSeconds:   offset,
		IsDST:           now.IsDST(),
		DetectionMethod: method,
	}
}

// detectSystemTimezone detects the system timezone
func (s *TimezoneServiceImpl) detectSystemTimezone() (*time.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.system != nil {
		return s.system, nil
	}

	ctx := context.Background()

	// time.Local resolves the zone database entry on most systems
	if loc := time.Local; loc != nil && loc.String() != "Local" {
		s.logger.Debug(ctx, "Detected timezone using time.Local",
			domain.NewField("timezone", loc.String()))
		s.system = loc
		s.method = "system"
		return loc, nil
	}

	// TZ environment variable
	if tzEnv := os.Getenv("TZ"); tzEnv != "" {
		if loc, err := time.LoadLocation(tzEnv); err == nil {
			s.logger.Debug(ctx, "Detected timezone from TZ environment variable",
				domain.NewField("timezone", loc.String()))
			s.system = loc
			s.method = "system"
			return loc, nil
		}
		s.logger.Warn(ctx, "Failed to load timezone from TZ environment variable",
			domain.NewField("TZ", tzEnv))
	}

	// /etc/localtime symlink into the zoneinfo database
	if linkPath, err := os.Readlink("/etc/localtime"); err == nil {
		parts := strings.Split(linkPath, "/zoneinfo/")
		if len(parts) > 1 {
			if loc, err := time.LoadLocation(parts[1]); err == nil {
				s.logger.Debug(ctx, "Detected timezone from /etc/localtime",
					domain.NewField("timezone", loc.String()))
				s.system = loc
				s.method = "system"
				return loc, nil
			}
		}
	}

	s.logger.Warn(ctx, "Failed to detect system timezone, using UTC as fallback")
	s.system = time.UTC
	s.method = "fallback"
	return time.UTC, domain.ErrTimezoneDetection("UTC")
}
