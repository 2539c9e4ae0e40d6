package staff

import (
	"context"
	"encoding/json"
	"fmt"

	"safarihub/models"
	"safarihub/utils"

	"go.uber.org/zap"
)

func availabilityCacheKey(role models.StaffRole, date string) string {
	return fmt.Sprintf("%s%s:%s", utils.AvailabilityCachePrefix, role, date)
}

// FindAvailable searches staff of a role free on a date. The park officer's
// dispatch screen polls this, so results are cached briefly in Redis.
func (s *DefaultStaffService) FindAvailable(ctx context.Context, role models.StaffRole, date string) ([]models.StaffMember, error) {
	key := availabilityCacheKey(role, date)

	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var cached []models.StaffMember
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return cached, nil
			}
		}
	}

	members, err := s.Repo.FindAvailable(role, date)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(members); err == nil {
			if err := s.Cache.Set(ctx, key, data, utils.AvailabilityCacheTTL).Err(); err != nil {
				utils.GetLogger().Debug("failed to cache availability search", zap.Error(err))
			}
		}
	}
	return members, nil
}

// invalidateAvailabilityCache drops cached searches for a date after an
// override changes.
func (s *DefaultStaffService) invalidateAvailabilityCache(ctx context.Context, date string) {
	if s.Cache == nil {
		return
	}
	for _, role := range []models.StaffRole{models.RoleTourGuide, models.RoleSafariDriver} {
		if err := s.Cache.Del(ctx, availabilityCacheKey(role, date)).Err(); err != nil {
			utils.GetLogger().Debug("failed to invalidate availability cache", zap.Error(err))
		}
	}
}
