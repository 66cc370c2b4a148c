package controller

import (
	"context"

	"github.com/dustin/go-humanize"

	"github.com/userportal/userportal"
	"github.com/userportal/userportal/api"
	"github.com/userportal/userportal/api/dto"
)

// GetStorageAllocationsByUser returns storage quotas of given type from the active allocations of the user.
func GetStorageAllocationsByUser(ctx context.Context, directory userportal.Directory, username string, storageType userportal.StorageType) (*dto.StorageAllocationList, *api.ErrorResponse) {
	records, err := directory.FindAllocations(ctx, userportal.AllocationFilter{
		Member: username,
		Status: userportal.AllocationStatusActive,
	})
	if err != nil {
		return nil, api.ErrorInternalServer(err)
	}

	list := make([]dto.StorageAllocation, 0)
	for _, record := range records {
		quota := record.StorageQuota(storageType)
		if quota == nil || *quota < 0 {
			continue
		}
		list = append(list, dto.StorageAllocation{
			StorageAllocation: userportal.StorageAllocation{
				Name:       record.Name,
				Type:       storageType,
				QuotaBytes: *quota,
			},
			Quota: humanize.IBytes(uint64(*quota)),
		})
	}
	return &dto.StorageAllocationList{List: list}, nil
}
