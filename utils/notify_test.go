package utils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"learnhub/models"

	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testUser   = models.User{ID: "u1", Name: "Jane", Email: "jane@x.com"}
	testExam   = models.Exam{ID: "python-exam", CourseID: "python-programming", CourseName: "Python Programming", PassingScore: 70}
	testResult = models.ExamResult{ID: "r1", ExamID: "python-exam", Score: 80, Passed: true, Answers: map[string]int{"1": 0}}
)

func TestResultSyncPush(t *testing.T) {
	received := make(chan ResultPayload, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)
		var p ResultPayload
		assert.NoError(t, json.Unmarshal(body, &p))
		received <- p
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	NewResultSync(srv.URL).OnExamComplete(testUser, testExam, testResult)

	select {
	case p := <-received:
		assert.Equal(t, "u1", p.UserID)
		assert.Equal(t, "python-programming", p.CourseID)
		assert.Equal(t, 80, p.Result.Score)
	case <-time.After(5 * time.Second):
		t.Fatal("webhook not called")
	}
}

func TestResultSyncPushError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewResultSync(srv.URL).Push(ResultPayload{ExamID: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestExamPassedEmail(t *testing.T) {
	msg := ExamPassedEmail(mail.NewEmail("LearnHub", "no-reply@learnhub.local"), testUser, testExam, testResult)
	assert.Equal(t, "You passed the Python Programming exam", msg.Subject)
	require.Len(t, msg.Personalizations, 1)
	assert.Equal(t, "jane@x.com", msg.Personalizations[0].To[0].Address)
	require.Len(t, msg.Content, 2)
	assert.Contains(t, msg.Content[0].Value, "80%")
	assert.Contains(t, msg.Content[1].Value, "Python Programming")
}
