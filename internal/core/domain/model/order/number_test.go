package order_test

import (
	"testing"

	"flourmill/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestBuildNumber(t *testing.T) {
	assert.Equal(t, "WF-2026-001", order.BuildNumber("WF", 2026, 1))
	assert.Equal(t, "MD-2026-042", order.BuildNumber("MD", 2026, 42))
	assert.Equal(t, "WF-2027-1000", order.BuildNumber("WF", 2027, 1000))
}

func TestNumberPrefix(t *testing.T) {
	assert.Equal(t, "WF-2026", order.NumberPrefix("WF", 2026))
}

func TestSequenceOf(t *testing.T) {
	assert.Equal(t, 7, order.SequenceOf("WF-2026-007"))
	assert.Equal(t, 123, order.SequenceOf("SJ-2025-123"))
	assert.Equal(t, 0, order.SequenceOf("garbage"))
	assert.Equal(t, 0, order.SequenceOf("WF-2026-"))
}
