package ldap

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/userportal/userportal"
)

// CachedDirectory memoizes user and group lookups of the wrapped directory.
// Allocation searches always reach the wrapped directory so membership checks stay current.
type CachedDirectory struct {
	userportal.Directory
	cache *cache.Cache
}

// NewCachedDirectory wraps directory with a cache of given ttl. Non-positive ttl disables caching.
func NewCachedDirectory(directory userportal.Directory, ttl time.Duration) userportal.Directory {
	if ttl <= 0 {
		return directory
	}
	return &CachedDirectory{
		Directory: directory,
		cache:     cache.New(ttl, 2*ttl),
	}
}

func (directory *CachedDirectory) FindUserByUsername(ctx context.Context, username string) (userportal.DirectoryUser, error) {
	key := "username:" + username
	if user, ok := directory.cache.Get(key); ok {
		return user.(userportal.DirectoryUser), nil
	}

	user, err := directory.Directory.FindUserByUsername(ctx, username)
	if err != nil {
		return user, err
	}
	directory.cache.SetDefault(key, user)
	return user, nil
}

func (directory *CachedDirectory) FindUserByUID(ctx context.Context, uid int) (userportal.DirectoryUser, error) {
	key := fmt.Sprintf("uid:%d", uid)
	if user, ok := directory.cache.Get(key); ok {
		return user.(userportal.DirectoryUser), nil
	}

	user, err := directory.Directory.FindUserByUID(ctx, uid)
	if err != nil {
		return user, err
	}
	directory.cache.SetDefault(key, user)
	return user, nil
}

func (directory *CachedDirectory) IsGroupMember(ctx context.Context, group, username string) (bool, error) {
	key := "group:" + group + ":" + username
	if isMember, ok := directory.cache.Get(key); ok {
		return isMember.(bool), nil
	}

	isMember, err := directory.Directory.IsGroupMember(ctx, group, username)
	if err != nil {
		return false, err
	}
	directory.cache.SetDefault(key, isMember)
	return isMember, nil
}
