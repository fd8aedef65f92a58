package chesscom

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"game-data-pipeline/internal/pipeline"
)

func collect(t *testing.T, src pipeline.Source) []pipeline.Record {
	t.Helper()
	var got []pipeline.Record
	if err := src.Each(context.Background(), func(rec pipeline.Record) error {
		got = append(got, rec)
		return nil
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return got
}

func TestProfilesSkipsFailedPlayer(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if strings.Contains(req.URL.Path, "badplayer") {
			return jsonResponse(http.StatusInternalServerError, `{}`), nil
		}
		return jsonResponse(http.StatusOK, `{"player_id": 1, "username": "goodplayer", "url": "u"}`), nil
	})

	src := newTestClient(rt).Profiles([]string{"goodplayer", "badplayer", "goodplayer"})
	got := collect(t, src)
	if len(got) != 2 {
		t.Fatalf("expected 2 records with the failed player skipped, got %d", len(got))
	}
	for _, rec := range got {
		if rec["username"] != "goodplayer" {
			t.Fatalf("unexpected record: %v", rec)
		}
	}
}

func TestProfilesIsRestartable(t *testing.T) {
	calls := 0
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		calls++
		return jsonResponse(http.StatusOK, `{"player_id": 1, "username": "someone", "url": "u"}`), nil
	})

	src := newTestClient(rt).Profiles([]string{"someone"})
	collect(t, src)
	collect(t, src)
	if calls != 2 {
		t.Fatalf("expected each iteration to re-fetch, got %d calls", calls)
	}
}

func TestGamesIteratesPlayersByMonth(t *testing.T) {
	var paths []string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		paths = append(paths, req.URL.Path)
		return jsonResponse(http.StatusOK, `{"games": [{
			"url": "g", "pgn": "", "time_control": "600", "end_time": 1,
			"rated": true, "time_class": "rapid", "rules": "chess",
			"white": {"username": "a", "rating": 1, "result": "win"},
			"black": {"username": "b", "rating": 2, "result": "timeout"}
		}]}`), nil
	})

	src := newTestClient(rt).Games(Scope{
		Players:    []string{"alpha", "beta"},
		StartMonth: "2024/01",
		EndMonth:   "2024/02",
	})
	got := collect(t, src)
	if len(got) != 4 {
		t.Fatalf("expected 2 players x 2 months = 4 games, got %d", len(got))
	}
	want := []string{
		"/pub/player/alpha/games/2024/01",
		"/pub/player/alpha/games/2024/02",
		"/pub/player/beta/games/2024/01",
		"/pub/player/beta/games/2024/02",
	}
	if len(paths) != len(want) {
		t.Fatalf("expected %d requests, got %d", len(want), len(paths))
	}
	for i, p := range want {
		if paths[i] != p {
			t.Fatalf("request %d: expected %s, got %s", i, p, paths[i])
		}
	}
}

func TestGamesEqualBoundsFetchSingleMonth(t *testing.T) {
	var paths []string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		paths = append(paths, req.URL.Path)
		return jsonResponse(http.StatusOK, `{"games": []}`), nil
	})

	src := newTestClient(rt).Games(Scope{
		Players:    []string{"alpha"},
		StartMonth: "2024/01",
		EndMonth:   "2024/01",
	})
	collect(t, src)
	if len(paths) != 1 || paths[0] != "/pub/player/alpha/games/2024/01" {
		t.Fatalf("expected single request for the bound month, got %v", paths)
	}
}

func TestGamesInvalidMonthRangeFailsBeforeFetching(t *testing.T) {
	calls := 0
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		calls++
		return jsonResponse(http.StatusOK, `{"games": []}`), nil
	})

	src := newTestClient(rt).Games(Scope{
		Players:    []string{"alpha"},
		StartMonth: "2024/06",
		EndMonth:   "2024/01",
	})
	err := src.Each(context.Background(), func(pipeline.Record) error { return nil })
	if err == nil {
		t.Fatal("expected error for reversed month range")
	}
	if calls != 0 {
		t.Fatalf("expected no requests, got %d", calls)
	}
}

func TestGamesSkipsFailedMonth(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if strings.HasSuffix(req.URL.Path, "/2024/01") {
			return jsonResponse(http.StatusBadGateway, `{}`), nil
		}
		return jsonResponse(http.StatusOK, `{"games": [{
			"url": "g", "pgn": "", "time_control": "60", "end_time": 1,
			"rated": false, "time_class": "bullet", "rules": "chess",
			"white": {"username": "a", "rating": 1, "result": "win"},
			"black": {"username": "b", "rating": 2, "result": "checkmated"}
		}]}`), nil
	})

	src := newTestClient(rt).Games(Scope{
		Players:    []string{"alpha"},
		StartMonth: "2024/01",
		EndMonth:   "2024/02",
	})
	got := collect(t, src)
	if len(got) != 1 {
		t.Fatalf("expected the failed month skipped, got %d records", len(got))
	}
}

func TestSequencesHonorContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		cancel()
		return nil, ctx.Err()
	})

	src := newTestClient(rt).Profiles([]string{"alpha", "beta"})
	err := src.Each(ctx, func(pipeline.Record) error { return nil })
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestOnlineStatusEmitsPerPlayer(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"username": "someone", "last_online": 0}`), nil
	})

	src := newTestClient(rt).OnlineStatus([]string{"alpha", "beta"})
	got := collect(t, src)
	if len(got) != 2 {
		t.Fatalf("expected 2 status records, got %d", len(got))
	}
	if got[0]["is_online"] != false {
		t.Fatalf("expected never-seen player offline, got %v", got[0]["is_online"])
	}
}

func TestArchivesEmitsPerURL(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"archives": [
			"https://example.test/pub/player/alpha/games/2023/12",
			"https://example.test/pub/player/alpha/games/2024/01"
		]}`), nil
	})

	src := newTestClient(rt).Archives([]string{"alpha"})
	got := collect(t, src)
	if len(got) != 2 {
		t.Fatalf("expected 2 archive records, got %d", len(got))
	}
	if got[0]["month"] != "2023/12" {
		t.Fatalf("unexpected month: %v", got[0]["month"])
	}
}

func TestSourcesCoversAllResources(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{}`), nil
	})
	srcs := newTestClient(rt).Sources(Scope{Players: []string{"alpha"}, StartMonth: "2024/01", EndMonth: "2024/01"})

	for _, name := range []string{ResourceProfiles, ResourceGames, ResourceOnlineStatus, ResourceArchives} {
		src, ok := srcs[name]
		if !ok {
			t.Fatalf("missing source %s", name)
		}
		if src.Table().Name != name {
			t.Fatalf("source %s reports table %s", name, src.Table().Name)
		}
	}
}
