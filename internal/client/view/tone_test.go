package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/rentadmin/internal/client/models"
)

func TestStatusTone(t *testing.T) {
	assert.Equal(t, ToneSuccess, StatusTone(ResourcePosts, models.PostStatusActive))
	assert.Equal(t, ToneWarning, StatusTone(ResourcePosts, models.PostStatusPending))
	assert.Equal(t, ToneError, StatusTone(ResourcePosts, models.PostStatusDeleted))

	assert.Equal(t, ToneError, StatusTone(ResourceReports, models.ReportStatusPending))
	assert.Equal(t, ToneWarning, StatusTone(ResourceReports, models.ReportStatusProcessing))
	assert.Equal(t, ToneSuccess, StatusTone(ResourceReports, models.ReportStatusResolved))

	assert.Equal(t, ToneSuccess, StatusTone(ResourceUsers, models.UserStatusActive))
	assert.Equal(t, ToneError, StatusTone(ResourceUsers, models.UserStatusBlocked))

	assert.Equal(t, ToneDefault, StatusTone(ResourcePosts, "Unknown"))
	assert.Equal(t, ToneDefault, StatusTone(ResourceBlogs, "anything"))
}
