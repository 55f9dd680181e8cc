package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix        = "user:%s"
	PostKeyPrefix        = "post:%d"
	GroupKeyPrefix       = "group:%s"
	LandingPageKeyPrefix = "page:index:%d"
)

const (
	UserTTL  = 5 * time.Minute
	GroupTTL = 10 * time.Minute
	PostTTL  = 30 * time.Minute
)

func UserKey(username string) string {
	return fmt.Sprintf(UserKeyPrefix, username)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func GroupKey(slug string) string {
	return fmt.Sprintf(GroupKeyPrefix, slug)
}

// LandingPageKey is the key under which one rendered page of the landing
// listing is cached, per page number.
func LandingPageKey(page int) string {
	return fmt.Sprintf(LandingPageKeyPrefix, page)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, username string) {
	Invalidate(ctx, UserKey(username))
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

func InvalidateGroup(ctx context.Context, slug string) {
	Invalidate(ctx, GroupKey(slug))
}
