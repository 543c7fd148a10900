package mysql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKeyError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"翻译后的 gorm 错误", gorm.ErrDuplicatedKey, true},
		{"包装过的 gorm 错误", fmt.Errorf("insert like: %w", gorm.ErrDuplicatedKey), true},
		{"MySQL 1062 原始文案", errors.New("Error 1062 (23000): Duplicate entry '1-1-u' for key 'uk_like_subject_user'"), true},
		{"nil", nil, false},
		{"其他错误", errors.New("connection reset by peer"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isDuplicateKeyError(tc.err))
		})
	}
}
