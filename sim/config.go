package sim

import "fmt"

// DefaultIOWait is the number of slices a PCB spends blocked after E/S.
const DefaultIOWait = 2

// PromotionPolicy selects how the BlockedQueue releases expired entries.
type PromotionPolicy string

const (
	// PromoteHead examines only the head each slice; at most one promotion per slice.
	PromoteHead PromotionPolicy = "head"
	// PromoteAll releases every expired entry each slice, in FIFO order.
	PromoteAll PromotionPolicy = "all"
)

// AverageMode selects the arithmetic for the end-of-run averages.
type AverageMode string

const (
	// AveragesInteger truncates both quotients.
	AveragesInteger AverageMode = "integer"
	// AveragesReal uses floating-point division.
	AveragesReal AverageMode = "real"
)

var (
	validPromotionPolicies = map[PromotionPolicy]bool{
		"": true, PromoteHead: true, PromoteAll: true,
	}
	validAverageModes = map[AverageMode]bool{
		"": true, AveragesInteger: true, AveragesReal: true,
	}
)

// IsValidPromotionPolicy reports whether name is a recognized promotion policy.
// Empty string defaults to head.
func IsValidPromotionPolicy(name string) bool {
	return validPromotionPolicies[PromotionPolicy(name)]
}

// IsValidAverageMode reports whether name is a recognized average mode.
// Empty string defaults to integer.
func IsValidAverageMode(name string) bool {
	return validAverageModes[AverageMode(name)]
}

// Config groups the scheduler parameters for one run.
type Config struct {
	Quantum   int             // max instructions per slice (0 is legal for RunSlice only)
	IOWait    int             // slices a PCB stays blocked after E/S (0 = DefaultIOWait)
	Promotion PromotionPolicy // "head" (default) or "all"
	Averages  AverageMode     // "integer" (default) or "real"
}

// withDefaults fills zero-valued optional fields.
func (c Config) withDefaults() Config {
	if c.IOWait == 0 {
		c.IOWait = DefaultIOWait
	}
	if c.Promotion == "" {
		c.Promotion = PromoteHead
	}
	if c.Averages == "" {
		c.Averages = AveragesInteger
	}
	return c
}

// Validate checks that all fields are in range.
func (c Config) Validate() error {
	if c.Quantum < 0 {
		return fmt.Errorf("quantum must be non-negative, got %d", c.Quantum)
	}
	if c.IOWait < 0 {
		return fmt.Errorf("io wait must be positive, got %d", c.IOWait)
	}
	if !validPromotionPolicies[c.Promotion] {
		return fmt.Errorf("unknown promotion policy %q; valid: head, all", c.Promotion)
	}
	if !validAverageModes[c.Averages] {
		return fmt.Errorf("unknown average mode %q; valid: integer, real", c.Averages)
	}
	return nil
}
