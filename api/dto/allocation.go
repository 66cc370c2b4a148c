package dto

import (
	"net/http"

	"github.com/userportal/userportal"
)

type ComputeAllocationList struct {
	List []userportal.ComputeAllocation `json:"list"`
}

func (*ComputeAllocationList) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type DefaultAllocationList struct {
	List []string `json:"list" example:"def-smith"`
}

func (*DefaultAllocationList) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// SlurmAccountQuota is the quota granted to a slurm account.
type SlurmAccountQuota struct {
	Account    string  `json:"account" example:"def-smith_gpu"`
	Allocation string  `json:"allocation" example:"def-smith"`
	Resource   string  `json:"resource" example:"gpu"`
	Quota      float64 `json:"quota" example:"4"`
}

func (*SlurmAccountQuota) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// StorageAllocation is a storage allocation with human-readable quota.
type StorageAllocation struct {
	userportal.StorageAllocation
	Quota string `json:"quota" example:"10 TiB"`
}

type StorageAllocationList struct {
	List []StorageAllocation `json:"list"`
}

func (*StorageAllocationList) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
