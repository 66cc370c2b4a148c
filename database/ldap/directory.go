package ldap

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"time"

	goldap "github.com/go-ldap/ldap/v3"

	"github.com/userportal/userportal"
	"github.com/userportal/userportal/metrics"
)

// Conn is the part of a directory connection used for lookups.
type Conn interface {
	Bind(username, password string) error
	Search(request *goldap.SearchRequest) (*goldap.SearchResult, error)
	Close() error
}

type dialer func(config *Config) (Conn, error)

// Directory implements userportal.Directory over an LDAP server.
// Every lookup opens its own connection, binds as the service account and closes it afterwards.
type Directory struct {
	config  *Config
	logger  userportal.Logger
	metrics *metrics.SourceMetrics
	dial    dialer
}

// NewDirectory creates LDAP backed directory.
func NewDirectory(config *Config, logger userportal.Logger, sourceMetrics *metrics.SourceMetrics) *Directory {
	return &Directory{
		config:  config,
		logger:  logger,
		metrics: sourceMetrics,
		dial:    dialLDAP,
	}
}

func dialLDAP(config *Config) (Conn, error) {
	tlsConfig := &tls.Config{InsecureSkipVerify: config.InsecureSkipVerify} //nolint:gosec
	conn, err := goldap.DialURL(config.URL,
		goldap.DialWithDialer(&net.Dialer{Timeout: config.Timeout}),
		goldap.DialWithTLSConfig(tlsConfig),
	)
	if err != nil {
		return nil, err
	}
	if config.Timeout > 0 {
		conn.SetTimeout(config.Timeout)
	}
	if config.StartTLS {
		if err = conn.StartTLS(tlsConfig); err != nil {
			conn.Close() //nolint:errcheck
			return nil, fmt.Errorf("failed to start tls: %w", err)
		}
	}
	return conn, nil
}

// FindAllocations returns all allocation records matching the filter.
func (directory *Directory) FindAllocations(ctx context.Context, filter userportal.AllocationFilter) ([]userportal.AllocationRecord, error) {
	attributes := directory.config.Attributes
	entries, err := directory.search(ctx,
		directory.config.AllocationBaseDN,
		allocationSearchFilter(attributes, filter),
		attributes.allocationAttributes(),
	)
	if err != nil {
		return nil, err
	}

	records := make([]userportal.AllocationRecord, 0, len(entries))
	for _, entry := range entries {
		record, err := entryToAllocation(attributes, entry)
		if err != nil {
			directory.logger.Warning().
				Error(err).
				String(userportal.LogFieldNameAllocation, record.Name).
				Msg("Skip malformed allocation entry")
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// FindUserByUsername returns the single user with given username.
func (directory *Directory) FindUserByUsername(ctx context.Context, username string) (userportal.DirectoryUser, error) {
	return directory.findUser(ctx, userByUsernameFilter(directory.config.Attributes, username))
}

// FindUserByUID returns the single user with given numeric uid.
func (directory *Directory) FindUserByUID(ctx context.Context, uid int) (userportal.DirectoryUser, error) {
	return directory.findUser(ctx, userByUIDFilter(directory.config.Attributes, uid))
}

// IsGroupMember checks whether user is listed in members of the named group.
func (directory *Directory) IsGroupMember(ctx context.Context, group, username string) (bool, error) {
	attributes := directory.config.Attributes
	baseDN := directory.config.GroupBaseDN
	if baseDN == "" {
		baseDN = directory.config.UserBaseDN
	}
	entries, err := directory.search(ctx,
		baseDN,
		groupMemberFilter(attributes, group, username),
		[]string{attributes.GroupName},
	)
	if err != nil {
		return false, err
	}
	return len(entries) > 0, nil
}

func (directory *Directory) findUser(ctx context.Context, filter string) (userportal.DirectoryUser, error) {
	attributes := directory.config.Attributes
	entries, err := directory.search(ctx, directory.config.UserBaseDN, filter, attributes.userAttributes())
	if err != nil {
		return userportal.DirectoryUser{}, err
	}

	switch len(entries) {
	case 0:
		return userportal.DirectoryUser{}, userportal.ErrNotFound
	case 1:
		return entryToUser(attributes, entries[0])
	default:
		return userportal.DirectoryUser{}, fmt.Errorf("%w: %d users match %s", userportal.ErrMultipleFound, len(entries), filter)
	}
}

func (directory *Directory) search(ctx context.Context, baseDN, filter string, attributes []string) ([]*goldap.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	started := time.Now()
	defer directory.metrics.Requests.UpdateSince(started)

	conn, err := directory.dial(directory.config)
	if err != nil {
		directory.metrics.Failures.Inc()
		return nil, fmt.Errorf("failed to connect to directory: %w", err)
	}
	defer conn.Close() //nolint:errcheck

	if directory.config.BindDN != "" {
		if err = conn.Bind(directory.config.BindDN, directory.config.BindPassword); err != nil {
			directory.metrics.Failures.Inc()
			return nil, fmt.Errorf("failed to bind to directory as %s: %w", directory.config.BindDN, err)
		}
	}

	request := goldap.NewSearchRequest(
		baseDN,
		goldap.ScopeWholeSubtree,
		goldap.NeverDerefAliases,
		0,
		int(directory.config.Timeout.Seconds()),
		false,
		filter,
		attributes,
		nil,
	)

	directory.logger.Debug().
		String("base_dn", baseDN).
		String("filter", filter).
		Msg("Search directory")

	result, err := conn.Search(request)
	if err != nil {
		if goldap.IsErrorWithCode(err, goldap.LDAPResultNoSuchObject) {
			return nil, nil
		}
		directory.metrics.Failures.Inc()
		return nil, fmt.Errorf("failed to search %s with %s: %w", baseDN, filter, err)
	}
	return result.Entries, nil
}
