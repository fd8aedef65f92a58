package chesscom

import (
	"context"
	"time"

	"game-data-pipeline/internal/domain/chess"
	"game-data-pipeline/internal/logging"
	"game-data-pipeline/internal/pipeline"
	"game-data-pipeline/internal/providers"
	"game-data-pipeline/internal/timeutil"
)

// Scope selects which players and which month range the sequences cover.
type Scope struct {
	Players    []string
	StartMonth string
	EndMonth   string
}

// Sources returns every chess.com sequence keyed by resource name.
func (c *Client) Sources(scope Scope) map[string]pipeline.Source {
	return map[string]pipeline.Source{
		ResourceProfiles:     c.Profiles(scope.Players),
		ResourceGames:        c.Games(scope),
		ResourceOnlineStatus: c.OnlineStatus(scope.Players),
		ResourceArchives:     c.Archives(scope.Players),
	}
}

// Profiles yields one flattened profile record per player. A failed player
// fetch is logged and skipped.
func (c *Client) Profiles(players []string) pipeline.Source {
	return providers.NewSequence(ResourceProfiles, chess.ProfileColumns, func(ctx context.Context, emit func(pipeline.Record) error) error {
		first := true
		for _, player := range players {
			if err := c.paceAfterFirst(ctx, &first); err != nil {
				return err
			}
			start := time.Now()
			profile, err := c.FetchProfile(ctx, player)
			c.observe(ctx, ResourceProfiles, start, err)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				logging.Warn(c.logger, "profile fetch failed", logging.FieldPlayer, player, "error", err)
				continue
			}
			if err := emit(profile.Row()); err != nil {
				return err
			}
		}
		return nil
	})
}

// OnlineStatus yields one status record per player.
func (c *Client) OnlineStatus(players []string) pipeline.Source {
	return providers.NewSequence(ResourceOnlineStatus, chess.OnlineStatusColumns, func(ctx context.Context, emit func(pipeline.Record) error) error {
		first := true
		for _, player := range players {
			if err := c.paceAfterFirst(ctx, &first); err != nil {
				return err
			}
			start := time.Now()
			status, err := c.FetchOnlineStatus(ctx, player)
			c.observe(ctx, ResourceOnlineStatus, start, err)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				logging.Warn(c.logger, "online status fetch failed", logging.FieldPlayer, player, "error", err)
				continue
			}
			if err := emit(status.Row()); err != nil {
				return err
			}
		}
		return nil
	})
}

// Archives yields one record per monthly archive URL per player.
func (c *Client) Archives(players []string) pipeline.Source {
	return providers.NewSequence(ResourceArchives, chess.ArchiveColumns, func(ctx context.Context, emit func(pipeline.Record) error) error {
		first := true
		for _, player := range players {
			if err := c.paceAfterFirst(ctx, &first); err != nil {
				return err
			}
			start := time.Now()
			archives, err := c.FetchArchives(ctx, player)
			c.observe(ctx, ResourceArchives, start, err)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				logging.Warn(c.logger, "archives fetch failed", logging.FieldPlayer, player, "error", err)
				continue
			}
			for _, archive := range archives {
				if err := emit(archive.Row()); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// Games yields every game each player finished in the scope's month range,
// inclusive on both bounds. A failed month fetch is logged and skipped; a
// malformed month range fails the sequence.
func (c *Client) Games(scope Scope) pipeline.Source {
	return providers.NewSequence(ResourceGames, chess.GameColumns, func(ctx context.Context, emit func(pipeline.Record) error) error {
		months, err := timeutil.MonthsBetween(scope.StartMonth, scope.EndMonth)
		if err != nil {
			return err
		}

		first := true
		for _, player := range scope.Players {
			for _, month := range months {
				if err := c.paceAfterFirst(ctx, &first); err != nil {
					return err
				}
				start := time.Now()
				games, err := c.FetchMonthlyGames(ctx, player, month)
				c.observe(ctx, ResourceGames, start, err)
				if err != nil {
					if ctx.Err() != nil {
						return ctx.Err()
					}
					logging.Warn(c.logger, "monthly games fetch failed",
						logging.FieldPlayer, player,
						logging.FieldMonth, month,
						"error", err,
					)
					continue
				}
				for _, game := range games {
					if err := emit(game.Row()); err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
}

// paceAfterFirst applies the fixed delay before every request but the first.
func (c *Client) paceAfterFirst(ctx context.Context, first *bool) error {
	if *first {
		*first = false
		return nil
	}
	return c.pace(ctx)
}
