// Package titlegen suggests tournament titles through an optional
// generation service, falling back to a fixed template.
package titlegen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"adept_play/internal/utils"

	"github.com/sirupsen/logrus"
)

const DefaultTimeout = 5 * time.Second

type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Generator produces a suggestion for a game. Implementations may be slow
// or fail; Suggester bounds and absorbs both.
type Generator interface {
	Generate(ctx context.Context, gameName string) (Suggestion, error)
}

// Fallback is the suggestion used whenever generation is unavailable.
func Fallback(gameName string) Suggestion {
	return Suggestion{
		Title:       fmt.Sprintf("Epic %s Showdown", gameName),
		Description: fmt.Sprintf("Get ready for an exciting tournament for %s. Compete with the best and claim victory!", gameName),
	}
}

type Suggester struct {
	gen     Generator
	cache   *utils.Cache
	timeout time.Duration
}

// NewSuggester wraps gen. A nil gen always yields the fallback; a nil cache
// disables caching.
func NewSuggester(gen Generator, cache *utils.Cache, timeout time.Duration) *Suggester {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Suggester{gen: gen, cache: cache, timeout: timeout}
}

// Suggest never fails: errors, timeouts and empty answers all turn into the
// fallback suggestion.
func (s *Suggester) Suggest(ctx context.Context, gameName string) Suggestion {
	gameName = strings.TrimSpace(gameName)
	fallback := Fallback(gameName)
	if s.gen == nil || gameName == "" {
		return fallback
	}

	key := gameName
	var cached Suggestion
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return cached
	} else if err != nil {
		logrus.WithError(err).Warn("Title cache read failed")
		if found {
			// Undecodable entry, drop it so the fresh answer replaces it
			if err := s.cache.Delete(ctx, key); err != nil {
				logrus.WithError(err).Warn("Title cache delete failed")
			}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	got, err := s.gen.Generate(ctx, gameName)
	if err != nil {
		logrus.WithFields(logrus.Fields{"game": gameName, "error": err.Error()}).Warn("Title generation failed, using fallback")
		return fallback
	}
	if strings.TrimSpace(got.Title) == "" {
		got.Title = fmt.Sprintf("Awesome %s Event", gameName)
	}
	if strings.TrimSpace(got.Description) == "" {
		got.Description = fmt.Sprintf("Join the ultimate %s challenge.", gameName)
	}
	if err := s.cache.Set(context.WithoutCancel(ctx), key, got); err != nil {
		logrus.WithError(err).Warn("Title cache write failed")
	}
	return got
}
