package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/userportal/userportal"
	"github.com/userportal/userportal/api"
	"github.com/userportal/userportal/api/dto"
)

// ConvertToAllocations projects directory records into compute allocation summaries preserving their order.
func ConvertToAllocations(records []userportal.AllocationRecord) []userportal.ComputeAllocation {
	allocations := make([]userportal.ComputeAllocation, 0, len(records))
	for _, record := range records {
		allocations = append(allocations, userportal.ComputeAllocation{
			Name: record.Name,
			CPU:  record.CPU,
			GPU:  record.GPU,
		})
	}
	return allocations
}

// GetComputeAllocationsByUser returns compute allocations of every active allocation the user is member of.
func GetComputeAllocationsByUser(ctx context.Context, directory userportal.Directory, username string) (*dto.ComputeAllocationList, *api.ErrorResponse) {
	records, err := directory.FindAllocations(ctx, userportal.AllocationFilter{
		Member: username,
		Status: userportal.AllocationStatusActive,
	})
	if err != nil {
		return nil, api.ErrorInternalServer(err)
	}
	return &dto.ComputeAllocationList{List: ConvertToAllocations(records)}, nil
}

// GetComputeAllocationByAccount returns compute allocations of the active allocation with given name.
func GetComputeAllocationByAccount(ctx context.Context, directory userportal.Directory, account string) (*dto.ComputeAllocationList, *api.ErrorResponse) {
	allocations, err := computeAllocationByAccount(ctx, directory, account)
	if err != nil {
		return nil, api.ErrorInternalServer(err)
	}
	return &dto.ComputeAllocationList{List: allocations}, nil
}

func computeAllocationByAccount(ctx context.Context, directory userportal.Directory, account string) ([]userportal.ComputeAllocation, error) {
	records, err := directory.FindAllocations(ctx, userportal.AllocationFilter{
		Name:   account,
		Status: userportal.AllocationStatusActive,
	})
	if err != nil {
		return nil, err
	}
	return ConvertToAllocations(records), nil
}

// GetDefaultAllocationsByUser returns names of the default allocations of the user.
func GetDefaultAllocationsByUser(ctx context.Context, directory userportal.Directory, username string) (*dto.DefaultAllocationList, *api.ErrorResponse) {
	records, err := directory.FindAllocations(ctx, userportal.AllocationFilter{
		Member: username,
		Status: userportal.AllocationStatusActive,
	})
	if err != nil {
		return nil, api.ErrorInternalServer(err)
	}

	names := make([]string, 0)
	for _, record := range records {
		if strings.HasPrefix(record.Name, userportal.DefaultAllocationPrefix) {
			names = append(names, record.Name)
		}
	}
	return &dto.DefaultAllocationList{List: names}, nil
}

// GetSlurmAccountQuota returns number of cpu or gpu granted to a slurm account.
// Accounts ending with _gpu select the gpu quota, every other account selects the cpu quota.
func GetSlurmAccountQuota(ctx context.Context, directory userportal.Directory, account string) (*dto.SlurmAccountQuota, *api.ErrorResponse) {
	allocationName := userportal.TrimSlurmAccountSuffix(account)
	allocations, err := computeAllocationByAccount(ctx, directory, allocationName)
	if err != nil {
		return nil, api.ErrorInternalServer(err)
	}

	resource := "cpu"
	if userportal.IsGPUAccount(account) {
		resource = "gpu"
	}

	for _, allocation := range allocations {
		quota := allocation.CPU
		if resource == "gpu" {
			quota = allocation.GPU
		}
		if quota != nil {
			return &dto.SlurmAccountQuota{
				Account:    account,
				Allocation: allocationName,
				Resource:   resource,
				Quota:      *quota,
			}, nil
		}
	}
	return nil, api.ErrorNotFound(fmt.Sprintf("no %s allocation for account %s", resource, account))
}

// IsAllocationMember checks whether user is a member of the active allocation with given name.
func IsAllocationMember(ctx context.Context, directory userportal.Directory, allocation, username string) (bool, error) {
	if allocation == "" || username == "" {
		return false, nil
	}
	records, err := directory.FindAllocations(ctx, userportal.AllocationFilter{
		Name:   allocation,
		Member: username,
		Status: userportal.AllocationStatusActive,
	})
	if err != nil {
		return false, err
	}
	return len(records) > 0, nil
}
