package main

import (
	"context"

	"github.com/gomodule/redigo/redis"
)

const (
	companyCachePrefix = "opendart/company/"
	companyCacheTTL    = 60 * 60 * 24
)

// fetchCompanyInfo loads the company.json profile, from redis when a fresh
// copy is cached (1 day expire), or from OpenDart otherwise. Only good
// answers are cached.
func fetchCompanyInfo(ctx context.Context, deps *Dependencies, corpCode string) (CompanyInfo, error) {
	corpCode = padCorpCode(corpCode)
	sublog := deps.logger.With().Str("corp_code", corpCode).Logger()
	redisKey := companyCachePrefix + corpCode

	var redisConn redis.Conn
	if deps.redisPool != nil {
		redisConn = deps.redisPool.Get()
		defer redisConn.Close()

		response, err := redis.String(redisConn.Do("GET", redisKey))
		if err == nil {
			if info, err := decodeCompany(response); err == nil {
				cacheLookups.WithLabelValues(companyCachePrefix, "hit").Inc()
				sublog.Info().Str("redis_key", redisKey).Msg("redis cache hit")
				return info, nil
			}
		} else if err != redis.ErrNil {
			sublog.Warn().Err(err).Str("redis_key", redisKey).Msg("failed to read from redis")
		}
		cacheLookups.WithLabelValues(companyCachePrefix, "miss").Inc()
	}

	response, err := deps.dart.CompanyJSON(ctx, corpCode)
	if err != nil {
		return CompanyInfo{}, err
	}
	info, err := decodeCompany(response)
	if err != nil {
		return CompanyInfo{}, err
	}

	if redisConn != nil {
		_, err = redisConn.Do("SET", redisKey, response, "EX", companyCacheTTL)
		if err != nil {
			sublog.Error().Err(err).Str("redis_key", redisKey).Msg("failed to save to redis")
		}
	}
	return info, nil
}
