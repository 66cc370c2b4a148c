package userportal

import (
	"strings"
	"time"
)

const (
	// AllocationStatusActive marks allocations that are currently granted.
	AllocationStatusActive = "active"
	// DefaultAllocationPrefix is carried by the name of every default (non-competitive) allocation.
	DefaultAllocationPrefix = "def-"
	// SlurmAccountGPUSuffix selects the GPU quota of an allocation.
	SlurmAccountGPUSuffix = "_gpu"
	// SlurmAccountCPUSuffix selects the CPU quota of an allocation.
	SlurmAccountCPUSuffix = "_cpu"
)

// StorageType is the kind of storage quota attached to an allocation.
type StorageType string

const (
	StorageTypeProject  StorageType = "project"
	StorageTypeNearline StorageType = "nearline"
)

// AllocationRecord represents one allocation entry as stored in the directory.
type AllocationRecord struct {
	Name            string
	Status          string
	Members         []string
	CPU             *float64
	GPU             *float64
	ProjectStorage  *int64
	NearlineStorage *int64
}

// IsActive returns true if allocation is currently granted.
func (record *AllocationRecord) IsActive() bool {
	return record.Status == AllocationStatusActive
}

// HasMember checks whether given username is listed in allocation members.
func (record *AllocationRecord) HasMember(username string) bool {
	for _, member := range record.Members {
		if member == username {
			return true
		}
	}
	return false
}

// StorageQuota returns quota in bytes of given storage type, nil if allocation has none.
func (record *AllocationRecord) StorageQuota(storageType StorageType) *int64 {
	switch storageType {
	case StorageTypeProject:
		return record.ProjectStorage
	case StorageTypeNearline:
		return record.NearlineStorage
	default:
		return nil
	}
}

// AllocationFilter restricts directory allocation searches. Empty fields are not filtered on.
type AllocationFilter struct {
	Name   string
	Member string
	Status string
}

// ComputeAllocation is a compute allocation summary.
type ComputeAllocation struct {
	Name string   `json:"name" example:"def-smith"`
	CPU  *float64 `json:"cpu,omitempty" example:"50"`
	GPU  *float64 `json:"gpu,omitempty" example:"2"`
}

// StorageAllocation is a storage allocation summary.
type StorageAllocation struct {
	Name       string      `json:"name" example:"rrg-smith"`
	Type       StorageType `json:"type" example:"project"`
	QuotaBytes int64       `json:"quota_bytes" example:"10995116277760"`
}

// DirectoryUser represents user entry stored in the directory.
type DirectoryUser struct {
	Username string `json:"username" example:"jsmith"`
	UID      int    `json:"uid" example:"3000123"`
}

// AllocationNameFromAccount returns the allocation name a slurm or cloud account belongs to,
// e.g. def-smith_gpu becomes def-smith.
func AllocationNameFromAccount(account string) string {
	name, _, _ := strings.Cut(account, "_")
	return name
}

// TrimSlurmAccountSuffix removes trailing _gpu or _cpu marker from slurm account name.
func TrimSlurmAccountSuffix(account string) string {
	if strings.HasSuffix(account, SlurmAccountGPUSuffix) {
		return strings.TrimSuffix(account, SlurmAccountGPUSuffix)
	}
	return strings.TrimSuffix(account, SlurmAccountCPUSuffix)
}

// IsGPUAccount checks whether slurm account name carries the GPU marker.
func IsGPUAccount(account string) bool {
	return strings.HasSuffix(account, SlurmAccountGPUSuffix)
}

// Series is a range query result with paired timestamps and values.
type Series struct {
	Metric map[string]string
	Times  []time.Time
	Values []float64
}
