package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetOwnerScopeFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   string
		wantOK bool
	}{
		{
			name:   "success: scope present",
			ctx:    context.WithValue(context.Background(), OwnerScopeCtxKey, "shop-1"),
			want:   "shop-1",
			wantOK: true,
		},
		{
			name:   "missing: empty context",
			ctx:    context.Background(),
			wantOK: false,
		},
		{
			name:   "missing: empty scope value",
			ctx:    context.WithValue(context.Background(), OwnerScopeCtxKey, ""),
			wantOK: false,
		},
		{
			name:   "missing: wrong value type",
			ctx:    context.WithValue(context.Background(), OwnerScopeCtxKey, 42),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetOwnerScopeFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
