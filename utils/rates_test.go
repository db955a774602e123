package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRates_ZeroDenominators(t *testing.T) {
	assert.Zero(t, ConversionRate(5, 0))
	assert.Zero(t, AttendanceRate(5, 0))
	assert.Zero(t, CapacityRate(5, 0))
	assert.Zero(t, CapacityRate(5, -1))
}

func TestRates_Values(t *testing.T) {
	assert.InDelta(t, 50, ConversionRate(1, 2), 0.001)
	assert.InDelta(t, 33.33, ConversionRate(1, 3), 0.001)
	assert.InDelta(t, 80, AttendanceRate(80, 100), 0.001)
	assert.InDelta(t, 75, CapacityRate(75, 100), 0.001)

	// 80 confirmed of 100 seats sits exactly on the good boundary.
	rate := CapacityRate(80, 100)
	assert.InDelta(t, 80, rate, 0.001)
	assert.Equal(t, "good", CapacityTier(rate))
}

func TestAttendanceTier(t *testing.T) {
	assert.Equal(t, "good", AttendanceTier(80))
	assert.Equal(t, "good", AttendanceTier(95.5))
	assert.Equal(t, "average", AttendanceTier(79.99))
	assert.Equal(t, "average", AttendanceTier(60))
	assert.Equal(t, "poor", AttendanceTier(59.99))
	assert.Equal(t, "poor", AttendanceTier(0))
}

func TestCapacityTier(t *testing.T) {
	assert.Equal(t, "good", CapacityTier(80))
	assert.Equal(t, "average", CapacityTier(79.99))
	assert.Equal(t, "average", CapacityTier(50))
	assert.Equal(t, "poor", CapacityTier(49.99))
}
