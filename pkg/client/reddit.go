package client

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"
)

// ErrNoPosts is returned when no suitable image post could be found in any
// of the configured subreddits.
var ErrNoPosts = fmt.Errorf("no suitable posts found")

var memeSubreddits = []string{"memes", "dankmemes", "wholesomememes", "programmerhumor", "funny"}

var imageSuffixes = []string{".jpg", ".jpeg", ".png", ".gif"}

type RedditClient struct {
	*BaseClient
	baseURL   string
	userAgent string
}

// RedditPost is an image post suitable for embedding.
type RedditPost struct {
	Title     string
	ImageURL  string
	Permalink string
	Subreddit string
	Upvotes   int
	Comments  int
}

func NewRedditClient(config ClientConfig, logger *zap.Logger) *RedditClient {
	baseClient := NewBaseClient("reddit", config, logger)
	return &RedditClient{
		BaseClient: baseClient,
		baseURL:    "https://www.reddit.com",
		userAgent:  "discordbot:skycord:v1.0",
	}
}

type redditListing struct {
	Data struct {
		Children []struct {
			Data struct {
				Title       string `json:"title"`
				URL         string `json:"url"`
				Permalink   string `json:"permalink"`
				Subreddit   string `json:"subreddit"`
				Ups         int    `json:"ups"`
				NumComments int    `json:"num_comments"`
				IsVideo     bool   `json:"is_video"`
				Over18      bool   `json:"over_18"`
				Spoiler     bool   `json:"spoiler"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// RandomMeme picks a random safe image post from the meme subreddits,
// trying each in turn until one yields candidates.
func (c *RedditClient) RandomMeme(ctx context.Context) (*RedditPost, error) {
	for _, subreddit := range memeSubreddits {
		post, err := c.hotImagePost(ctx, subreddit)
		if err != nil {
			c.logger.Warn("Subreddit fetch failed",
				zap.String("subreddit", subreddit),
				zap.Error(err))
			continue
		}
		return post, nil
	}
	return nil, ErrNoPosts
}

func (c *RedditClient) hotImagePost(ctx context.Context, subreddit string) (*RedditPost, error) {
	u := fmt.Sprintf("%s/r/%s/hot.json?limit=50", c.baseURL, subreddit)

	// Reddit rejects requests without a distinct User-Agent.
	body, err := c.GetWithHeaders(ctx, u, map[string]string{"User-Agent": c.userAgent})
	if err != nil {
		return nil, err
	}

	var listing redditListing
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("parsing listing: %w", err)
	}

	var candidates []*RedditPost
	for _, child := range listing.Data.Children {
		post := child.Data
		if post.IsVideo || post.Over18 || post.Spoiler || !isImageURL(post.URL) {
			continue
		}
		candidates = append(candidates, &RedditPost{
			Title:     post.Title,
			ImageURL:  post.URL,
			Permalink: "https://reddit.com" + post.Permalink,
			Subreddit: post.Subreddit,
			Upvotes:   post.Ups,
			Comments:  post.NumComments,
		})
	}
	if len(candidates) == 0 {
		return nil, ErrNoPosts
	}
	return candidates[rand.Intn(len(candidates))], nil
}

func isImageURL(u string) bool {
	lower := strings.ToLower(u)
	for _, suffix := range imageSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}
