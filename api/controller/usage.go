package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/userportal/userportal"
	"github.com/userportal/userportal/api"
	"github.com/userportal/userportal/api/dto"
)

// GetAccountUsage returns cpu or gpu usage of a slurm account over given range.
func GetAccountUsage(ctx context.Context, source userportal.MetricSource, queries api.Queries, account string, from, to time.Time, step time.Duration) (*dto.SeriesList, *api.ErrorResponse) {
	template := queries.AccountCPUUsage
	if userportal.IsGPUAccount(account) {
		template = queries.AccountGPUUsage
	}
	query := fmt.Sprintf(template, labelMatchers(source.Filter(), "account", userportal.TrimSlurmAccountSuffix(account)))

	times, values, err := source.QueryRange(ctx, query, from, to, step)
	if err != nil {
		if errors.Is(err, userportal.ErrNoSeries) {
			return nil, api.ErrorNotFound(fmt.Sprintf("no usage recorded for account %s", account))
		}
		return nil, api.ErrorRemoteServerUnavailable(err)
	}
	return &dto.SeriesList{List: []dto.Series{{
		Metric: map[string]string{"account": account},
		X:      times,
		Y:      values,
	}}}, nil
}

// GetProjectUsage returns vcpu usage of every instance of a cloud project over given range.
func GetProjectUsage(ctx context.Context, source userportal.MetricSource, queries api.Queries, project string, from, to time.Time, step time.Duration) (*dto.SeriesList, *api.ErrorResponse) {
	query := fmt.Sprintf(queries.ProjectUsage, labelMatchers(source.Filter(), "project_name", project))
	return QueryRange(ctx, source, query, from, to, step)
}

// QueryRange runs arbitrary range query.
func QueryRange(ctx context.Context, source userportal.MetricSource, query string, from, to time.Time, step time.Duration) (*dto.SeriesList, *api.ErrorResponse) {
	series, err := source.QueryRangeMultiple(ctx, query, from, to, step)
	if err != nil {
		return nil, api.ErrorRemoteServerUnavailable(err)
	}

	list := make([]dto.Series, 0, len(series))
	for _, s := range series {
		list = append(list, dto.Series{Metric: s.Metric, X: s.Times, Y: s.Values})
	}
	return &dto.SeriesList{List: list}, nil
}

// QueryLast runs arbitrary instant query.
func QueryLast(ctx context.Context, source userportal.MetricSource, query string) (*dto.QueryResult, *api.ErrorResponse) {
	value, err := source.QueryLast(ctx, query)
	if err != nil {
		return nil, api.ErrorRemoteServerUnavailable(err)
	}
	return &dto.QueryResult{ResultType: value.Type().String(), Result: value}, nil
}

func labelMatchers(filter, label, value string) string {
	matcher := fmt.Sprintf(`%s="%s"`, label, escapeLabelValue(value))
	if filter == "" {
		return matcher
	}
	return matcher + "," + filter
}

var labelValueReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func escapeLabelValue(value string) string {
	return labelValueReplacer.Replace(value)
}
