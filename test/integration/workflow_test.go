//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanzeemhub/reports-go/internal/domain/submission"
	"github.com/tanzeemhub/reports-go/internal/domain/template"
	"github.com/tanzeemhub/reports-go/internal/domain/window"
)

// setupTemplateWithWindow creates and activates a template and opens a window
// around now, through the admin API.
func setupTemplateWithWindow(t *testing.T, title string) (uint, uint) {
	t.Helper()
	ctx := GetTestContext()
	admin := NewHTTPClient(ctx.Router, ctx.AdminToken)

	resp, err := admin.POST("/templates", map[string]interface{}{
		"title":     title,
		"questions": []map[string]string{{"id": "q1", "label": "Members present?"}},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var tpl template.ReportTemplate
	require.NoError(t, resp.DecodeJSON(&tpl))

	resp, err = admin.PUT(fmt.Sprintf("/templates/%d/activate", tpl.ID), nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = admin.POST(fmt.Sprintf("/templates/%d/windows", tpl.ID), map[string]interface{}{
		"name":       title + " window",
		"start_date": time.Now().Add(-time.Hour).Format(time.RFC3339),
		"end_date":   time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var w window.SubmissionWindow
	require.NoError(t, resp.DecodeJSON(&w))
	return tpl.ID, w.ID
}

func submitReport(t *testing.T, templateID, windowID uint) submission.ReportSubmission {
	t.Helper()
	ctx := GetTestContext()
	submitter := NewHTTPClient(ctx.Router, ctx.SubmitterToken)

	resp, err := submitter.POST("/submissions/submit", map[string]interface{}{
		"template_id": templateID,
		"window_id":   windowID,
		"responses":   map[string]string{"q1": "42"},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sub submission.ReportSubmission
	require.NoError(t, resp.DecodeJSON(&sub))
	require.Equal(t, submission.StatusSubmitted, sub.Status)
	return sub
}

func TestApprovalWorkflow_Integration(t *testing.T) {
	ctx := GetTestContext()
	templateID, windowID := setupTemplateWithWindow(t, "Monthly activity report")

	submitter := NewHTTPClient(ctx.Router, ctx.SubmitterToken)
	reviewer := NewHTTPClient(ctx.Router, ctx.ReviewerToken)

	var sub submission.ReportSubmission

	t.Run("SaveDraft", func(t *testing.T) {
		resp, err := submitter.POST("/submissions/draft", map[string]interface{}{
			"template_id": templateID,
			"responses":   map[string]string{"q1": "draft answer"},
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		require.NoError(t, resp.DecodeJSON(&sub))
		assert.Equal(t, submission.StatusDraft, sub.Status)
	})

	t.Run("Submit", func(t *testing.T) {
		sub = submitReport(t, templateID, windowID)
		assert.NotNil(t, sub.SubmittedAt)
	})

	t.Run("SubmitterCannotApprove", func(t *testing.T) {
		resp, err := submitter.PUT(fmt.Sprintf("/submissions/%d/approve", sub.ID), nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("ReviewerApproves", func(t *testing.T) {
		resp, err := reviewer.PUT(fmt.Sprintf("/submissions/%d/approve", sub.ID), map[string]string{
			"comments": "well prepared",
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var approved submission.ReportSubmission
		require.NoError(t, resp.DecodeJSON(&approved))
		assert.Equal(t, submission.StatusApproved, approved.Status)
	})

	t.Run("ApproveTwiceConflicts", func(t *testing.T) {
		resp, err := reviewer.PUT(fmt.Sprintf("/submissions/%d/approve", sub.ID), nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("LedgerRecordsDecision", func(t *testing.T) {
		resp, err := submitter.GET(fmt.Sprintf("/submissions/%d/ledger", sub.ID))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var entries []submission.SubmissionApproval
		require.NoError(t, resp.DecodeJSON(&entries))
		require.Len(t, entries, 1)
		assert.Equal(t, submission.DecisionApproved, entries[0].Decision)
		assert.Equal(t, ctx.Reviewer.ID, entries[0].ApproverID)
	})
}

func TestRejectionWorkflow_Integration(t *testing.T) {
	ctx := GetTestContext()
	templateID, windowID := setupTemplateWithWindow(t, "Quarterly finance report")

	submitter := NewHTTPClient(ctx.Router, ctx.SubmitterToken)
	reviewer := NewHTTPClient(ctx.Router, ctx.ReviewerToken)

	sub := submitReport(t, templateID, windowID)

	t.Run("RejectWithoutReasonFails", func(t *testing.T) {
		resp, err := reviewer.PUT(fmt.Sprintf("/submissions/%d/reject", sub.ID), map[string]string{})
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Reject", func(t *testing.T) {
		resp, err := reviewer.PUT(fmt.Sprintf("/submissions/%d/reject", sub.ID), map[string]string{
			"reason": "totals do not add up",
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var rejected submission.ReportSubmission
		require.NoError(t, resp.DecodeJSON(&rejected))
		assert.Equal(t, submission.StatusRejected, rejected.Status)
		assert.Equal(t, "totals do not add up", rejected.RejectionReason)
	})

	t.Run("ReturnToDraftAndResubmit", func(t *testing.T) {
		resp, err := submitter.PUT(fmt.Sprintf("/submissions/%d/return", sub.ID), nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var draft submission.ReportSubmission
		require.NoError(t, resp.DecodeJSON(&draft))
		assert.Equal(t, submission.StatusDraft, draft.Status)
		assert.Nil(t, draft.SubmittedAt)

		resubmitted := submitReport(t, templateID, windowID)
		assert.Equal(t, sub.ID, resubmitted.ID)
	})

	t.Run("LedgerKeepsFullHistory", func(t *testing.T) {
		resp, err := reviewer.PUT(fmt.Sprintf("/submissions/%d/approve", sub.ID), nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, err = submitter.GET(fmt.Sprintf("/submissions/%d/ledger", sub.ID))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var entries []submission.SubmissionApproval
		require.NoError(t, resp.DecodeJSON(&entries))
		require.Len(t, entries, 2)
		assert.Equal(t, submission.DecisionRejected, entries[0].Decision)
		assert.Equal(t, submission.DecisionApproved, entries[1].Decision)
	})
}

func TestFlagAndCommentWorkflow_Integration(t *testing.T) {
	ctx := GetTestContext()
	templateID, windowID := setupTemplateWithWindow(t, "Membership census")

	submitter := NewHTTPClient(ctx.Router, ctx.SubmitterToken)
	reviewer := NewHTTPClient(ctx.Router, ctx.ReviewerToken)

	sub := submitReport(t, templateID, windowID)

	var flag submission.SubmissionFlag

	t.Run("RaiseFlag", func(t *testing.T) {
		resp, err := reviewer.POST(fmt.Sprintf("/submissions/%d/flags", sub.ID), map[string]string{
			"reason": "census numbers look copied from last quarter",
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		require.NoError(t, resp.DecodeJSON(&flag))
		assert.True(t, flag.Active)
	})

	t.Run("SecondFlagConflicts", func(t *testing.T) {
		resp, err := reviewer.POST(fmt.Sprintf("/submissions/%d/flags", sub.ID), map[string]string{
			"reason": "another concern",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("SubmitterCannotFlag", func(t *testing.T) {
		resp, err := submitter.POST(fmt.Sprintf("/submissions/%d/flags", sub.ID), map[string]string{
			"reason": "flagging myself",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	var comment submission.SubmissionComment

	t.Run("CommentThread", func(t *testing.T) {
		resp, err := reviewer.POST(fmt.Sprintf("/submissions/%d/comments", sub.ID), map[string]interface{}{
			"content": "please double check section 3",
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		require.NoError(t, resp.DecodeJSON(&comment))

		resp, err = submitter.POST(fmt.Sprintf("/submissions/%d/comments", sub.ID), map[string]interface{}{
			"content":   "section 3 corrected",
			"parent_id": comment.ID,
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var reply submission.SubmissionComment
		require.NoError(t, resp.DecodeJSON(&reply))

		// A reply to a reply is out.
		resp, err = reviewer.POST(fmt.Sprintf("/submissions/%d/comments", sub.ID), map[string]interface{}{
			"content":   "too deep",
			"parent_id": reply.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("DeletedCommentIsMasked", func(t *testing.T) {
		resp, err := reviewer.DELETE(fmt.Sprintf("/comments/%d", comment.ID))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, err = submitter.GET(fmt.Sprintf("/submissions/%d/comments?include_deleted=true", sub.ID))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var views []submission.CommentView
		require.NoError(t, resp.DecodeJSON(&views))
		require.NotEmpty(t, views)
		assert.Equal(t, submission.DeletedPlaceholder, views[0].Content)
		assert.NotEmpty(t, views[0].Replies)
	})

	t.Run("ResolveFlag", func(t *testing.T) {
		resp, err := reviewer.PUT(fmt.Sprintf("/flags/%d/resolve", flag.ID), map[string]string{
			"notes": "explained by new jamaat mapping",
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var resolved submission.SubmissionFlag
		require.NoError(t, resp.DecodeJSON(&resolved))
		assert.False(t, resolved.Active)
	})
}

func TestBulkDecision_Integration(t *testing.T) {
	ctx := GetTestContext()
	reviewer := NewHTTPClient(ctx.Router, ctx.ReviewerToken)

	templateID, windowID := setupTemplateWithWindow(t, "Annual summary")
	sub := submitReport(t, templateID, windowID)

	resp, err := reviewer.POST("/submissions/bulk-approve", map[string]interface{}{
		"submission_ids": []uint{sub.ID, 999999},
		"comments":       "batch cleared",
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result submission.BulkResult
	require.NoError(t, resp.DecodeJSON(&result))
	assert.Equal(t, 2, result.Requested)
	assert.Equal(t, 1, result.Success)
	assert.Equal(t, 1, result.Failed)
}
