package main

import "context"

type cacheDirKey struct{}

func withCacheDir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, cacheDirKey{}, dir)
}

func cacheDirFrom(ctx context.Context) string {
	dir, _ := ctx.Value(cacheDirKey{}).(string)
	if dir == "" {
		return "./cache"
	}
	return dir
}
