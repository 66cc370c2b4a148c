package ldap

import (
	"fmt"
	"strconv"

	goldap "github.com/go-ldap/ldap/v3"

	"github.com/userportal/userportal"
)

func entryToAllocation(attributes Attributes, entry *goldap.Entry) (userportal.AllocationRecord, error) {
	record := userportal.AllocationRecord{
		Name:    entry.GetAttributeValue(attributes.AllocationName),
		Status:  entry.GetAttributeValue(attributes.AllocationStatus),
		Members: entry.GetAttributeValues(attributes.AllocationMembers),
	}

	var err error
	if record.CPU, err = floatAttribute(entry, attributes.AllocationCPU); err != nil {
		return record, err
	}
	if record.GPU, err = floatAttribute(entry, attributes.AllocationGPU); err != nil {
		return record, err
	}
	if record.ProjectStorage, err = int64Attribute(entry, attributes.ProjectStorage); err != nil {
		return record, err
	}
	if record.NearlineStorage, err = int64Attribute(entry, attributes.NearlineStorage); err != nil {
		return record, err
	}
	return record, nil
}

func entryToUser(attributes Attributes, entry *goldap.Entry) (userportal.DirectoryUser, error) {
	uidValue := entry.GetAttributeValue(attributes.UID)
	uid, err := strconv.Atoi(uidValue)
	if err != nil {
		return userportal.DirectoryUser{}, fmt.Errorf("entry %s has invalid %s %q: %w", entry.DN, attributes.UID, uidValue, err)
	}
	return userportal.DirectoryUser{
		Username: entry.GetAttributeValue(attributes.Username),
		UID:      uid,
	}, nil
}

func floatAttribute(entry *goldap.Entry, attribute string) (*float64, error) {
	value := entry.GetAttributeValue(attribute)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("entry %s has invalid %s %q: %w", entry.DN, attribute, value, err)
	}
	return &parsed, nil
}

func int64Attribute(entry *goldap.Entry, attribute string) (*int64, error) {
	value := entry.GetAttributeValue(attribute)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("entry %s has invalid %s %q: %w", entry.DN, attribute, value, err)
	}
	return &parsed, nil
}
