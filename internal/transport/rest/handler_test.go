package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DanRulev/vocadeck/internal/config"
	"github.com/DanRulev/vocadeck/internal/extract"
	"github.com/DanRulev/vocadeck/internal/models"
	mock_rest "github.com/DanRulev/vocadeck/internal/transport/rest/mock"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouterMock(ctrl *gomock.Controller, maxUpload int64, setupMock func(*mock_rest.MockServiceI, *mock_rest.MockPinger)) *gin.Engine {
	service := mock_rest.NewMockServiceI(ctrl)
	pinger := mock_rest.NewMockPinger(ctrl)

	if setupMock != nil {
		setupMock(service, pinger)
	}

	h := NewHandler(service, pinger, maxUpload, zap.NewNop())
	return NewRouter(config.HTTPConfig{AllowOrigins: []string{"http://localhost:5173"}}, "development", h, zap.NewNop())
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func multipartBody(t *testing.T, name, content string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

var testRecords = []models.WordRecord{
	{Language: models.Russian, Word: "кот", Translation: "con mèo", CorrectCount: 2, WrongCount: 1},
	{Language: models.Russian, Word: "мир", Translation: "thế giới", CorrectCount: 0, WrongCount: 2},
}

func TestRouter_languageParam(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := newRouterMock(ctrl, 0, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/klingon/stats", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unsupported language")
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pingErr  error
		wantCode int
		want     string
	}{
		{name: "ok", wantCode: http.StatusOK, want: `"status":"ok"`},
		{name: "db down", pingErr: assert.AnError, wantCode: http.StatusServiceUnavailable, want: `"status":"degraded"`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r := newRouterMock(ctrl, 0, func(_ *mock_rest.MockServiceI, mp *mock_rest.MockPinger) {
				mp.EXPECT().PingContext(gomock.Any()).Return(tt.pingErr)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestHandler_UploadDocument(t *testing.T) {
	t.Parallel()

	set := models.TranslationMap{"привет": "xin chào", "мир": models.Untranslated("мир")}

	tests := []struct {
		name      string
		filename  string
		maxUpload int64
		f         func(*mock_rest.MockServiceI)
		wantCode  int
		assert    func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:      "success",
			filename:  "lesson.txt",
			maxUpload: 1 << 20,
			f: func(ms *mock_rest.MockServiceI) {
				ms.EXPECT().Ingest(gomock.Any(), models.Russian, gomock.Any(), gomock.Nil()).
					DoAndReturn(func(ctx context.Context, lang models.Language, doc extract.Document, progress func(int, int)) (models.TranslationMap, error) {
						assert.Equal(t, "lesson.txt", doc.Name)
						assert.Equal(t, "привет мир", string(doc.Data))
						return set, nil
					})
			},
			wantCode: http.StatusOK,
			assert: func(t *testing.T, w *httptest.ResponseRecorder) {
				var got ingestResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, 2, got.Count)
				assert.Equal(t, set, got.Words)
				assert.Equal(t, []string{"мир"}, got.Failed)
			},
		},
		{
			name:     "unsupported format",
			filename: "photo.png",
			f: func(ms *mock_rest.MockServiceI) {
				ms.EXPECT().Ingest(gomock.Any(), models.Russian, gomock.Any(), gomock.Nil()).Return(nil, models.ErrUnsupportedFormat)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "no words",
			filename: "lesson.txt",
			f: func(ms *mock_rest.MockServiceI) {
				ms.EXPECT().Ingest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.ErrNoWords)
			},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "segmenter unavailable",
			filename: "lesson.txt",
			f: func(ms *mock_rest.MockServiceI) {
				ms.EXPECT().Ingest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.ErrDependencyUnavailable)
			},
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name:      "too large",
			filename:  "lesson.txt",
			maxUpload: 4,
			wantCode:  http.StatusRequestEntityTooLarge,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r := newRouterMock(ctrl, tt.maxUpload, func(ms *mock_rest.MockServiceI, _ *mock_rest.MockPinger) {
				if tt.f != nil {
					tt.f(ms)
				}
			})

			body, contentType := multipartBody(t, tt.filename, "привет мир")
			req := httptest.NewRequest(http.MethodPost, "/api/v1/russian/documents", body)
			req.Header.Set("Content-Type", contentType)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.assert != nil {
				tt.assert(t, w)
			}
		})
	}
}

func TestHandler_UploadDocument_missingFile(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := newRouterMock(ctrl, 0, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/russian/documents", strings.NewReader("plain")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateQuiz(t *testing.T) {
	t.Parallel()

	set := models.TranslationMap{"кот": "con mèo", "мир": "thế giới", "дом": "ngôi nhà", "лес": "khu rừng"}
	questions := []models.Question{
		{Prompt: "Từ 'кот' có nghĩa là gì?", Word: "кот", Options: []string{"thế giới", "con mèo", "ngôi nhà", "khu rừng"}, Correct: "con mèo"},
	}

	tests := []struct {
		name     string
		body     string
		f        func(*mock_rest.MockServiceI)
		wantCode int
	}{
		{
			name: "posted working set",
			body: `{"translations":{"кот":"con mèo","мир":"thế giới","дом":"ngôi nhà","лес":"khu rừng"},"num_questions":1}`,
			f: func(ms *mock_rest.MockServiceI) {
				ms.EXPECT().CreateQuiz(set, 1).Return(questions, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "stored words when nothing posted",
			f: func(ms *mock_rest.MockServiceI) {
				ms.EXPECT().SavedWords(gomock.Any(), models.Russian, 0).Return(testRecords, nil)
				ms.EXPECT().ReviewSet(testRecords).Return(models.TranslationMap{"кот": "con mèo", "мир": "thế giới"})
				ms.EXPECT().CreateQuiz(gomock.Any(), 0).Return([]models.Question{}, models.ErrInsufficientVocabulary)
			},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "malformed json",
			body:     `{"translations":`,
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r := newRouterMock(ctrl, 0, func(ms *mock_rest.MockServiceI, _ *mock_rest.MockPinger) {
				if tt.f != nil {
					tt.f(ms)
				}
			})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/russian/quizzes", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"correct_answer":"con mèo"`)
			}
		})
	}
}

func TestHandler_SubmitQuiz(t *testing.T) {
	t.Parallel()

	question := models.Question{Word: "кот", Options: []string{"a", "con mèo", "b", "c"}, Correct: "con mèo"}
	results := []models.QuizResult{{Question: question, Answer: "con mèo", Correct: true}}

	tests := []struct {
		name     string
		f        func(*mock_rest.MockServiceI)
		wantCode int
	}{
		{
			name: "graded and recorded",
			f: func(ms *mock_rest.MockServiceI) {
				ms.EXPECT().Grade([]models.Question{question}, []string{"con mèo"}).Return(1, results)
				ms.EXPECT().RecordQuiz(gomock.Any(), models.Chinese, results).Return(1, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "store failure",
			f: func(ms *mock_rest.MockServiceI) {
				ms.EXPECT().Grade(gomock.Any(), gomock.Any()).Return(1, results)
				ms.EXPECT().RecordQuiz(gomock.Any(), models.Chinese, results).Return(0, assert.AnError)
			},
			wantCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r := newRouterMock(ctrl, 0, func(ms *mock_rest.MockServiceI, _ *mock_rest.MockPinger) { tt.f(ms) })

			body := jsonBody(t, submitRequest{Questions: []models.Question{question}, Answers: []string{"con mèo"}})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/chinese/quizzes/results", body)
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				var got submitResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, 1, got.Score)
				assert.Equal(t, 1, got.Total)
			} else {
				assert.Contains(t, w.Body.String(), "internal error")
				assert.NotContains(t, w.Body.String(), assert.AnError.Error())
			}
		})
	}
}

func TestHandler_RecordAnswer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		f        func(*mock_rest.MockServiceI)
		wantCode int
	}{
		{
			name: "wrong answer",
			body: `{"word":"кот","translation":"con mèo","correct":false}`,
			f: func(ms *mock_rest.MockServiceI) {
				ms.EXPECT().RecordAnswer(gomock.Any(), models.Russian, "кот", "con mèo", false).Return(nil)
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:     "missing correct",
			body:     `{"word":"кот"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing word",
			body:     `{"correct":true}`,
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r := newRouterMock(ctrl, 0, func(ms *mock_rest.MockServiceI, _ *mock_rest.MockPinger) {
				if tt.f != nil {
					tt.f(ms)
				}
			})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/russian/answers", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestHandler_RecordSession(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		f        func(*mock_rest.MockServiceI)
		wantCode int
	}{
		{
			name: "created",
			body: `{"session_type":"quiz","score":3,"total_questions":5}`,
			f: func(ms *mock_rest.MockServiceI) {
				ms.EXPECT().RecordSession(gomock.Any(), models.Russian, "quiz", 3, 5).Return(nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name: "score above total",
			body: `{"session_type":"quiz","score":6,"total_questions":5}`,
			f: func(ms *mock_rest.MockServiceI) {
				ms.EXPECT().RecordSession(gomock.Any(), models.Russian, "quiz", 6, 5).Return(models.ErrInvalidSession)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown type",
			body:     `{"session_type":"exam","score":1,"total_questions":1}`,
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r := newRouterMock(ctrl, 0, func(ms *mock_rest.MockServiceI, _ *mock_rest.MockPinger) {
				if tt.f != nil {
					tt.f(ms)
				}
			})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/russian/sessions", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestHandler_reads(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		f        func(*mock_rest.MockServiceI)
		wantCode int
		want     string
	}{
		{
			name: "stats",
			path: "/api/v1/russian/stats",
			f: func(ms *mock_rest.MockServiceI) {
				ms.EXPECT().Summary(gomock.Any(), models.Russian).Return(models.Summary{
					Language: models.Russian,
					Stats:    models.Stats{TotalWords: 2, TotalCorrect: 2, TotalWrong: 3, MasteredWords: 1},
					Accuracy: 40,
				}, nil)
			},
			wantCode: http.StatusOK,
			want:     `"accuracy":40`,
		},
		{
			name: "weak words",
			path: "/api/v1/russian/weak-words",
			f: func(ms *mock_rest.MockServiceI) {
				ms.EXPECT().WeakWords(gomock.Any(), models.Russian).Return(testRecords[1:], nil)
			},
			wantCode: http.StatusOK,
			want:     `"word":"мир"`,
		},
		{
			name: "history",
			path: "/api/v1/russian/words",
			f: func(ms *mock_rest.MockServiceI) {
				ms.EXPECT().History(gomock.Any(), models.Russian).Return(testRecords, nil)
			},
			wantCode: http.StatusOK,
			want:     `"word":"кот"`,
		},
		{
			name: "saved words",
			path: "/api/v1/russian/words?mode=saved&limit=5",
			f: func(ms *mock_rest.MockServiceI) {
				ms.EXPECT().SavedWords(gomock.Any(), models.Russian, 5).Return(testRecords, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "random words default count",
			path: "/api/v1/russian/words?mode=random",
			f: func(ms *mock_rest.MockServiceI) {
				ms.EXPECT().RandomWords(gomock.Any(), models.Russian, defaultRandomWords).Return(testRecords, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "bad mode",
			path:     "/api/v1/russian/words?mode=all",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "bad limit",
			path:     "/api/v1/russian/sessions?limit=x",
			wantCode: http.StatusBadRequest,
		},
		{
			name: "sessions",
			path: "/api/v1/chinese/sessions?limit=2",
			f: func(ms *mock_rest.MockServiceI) {
				ms.EXPECT().Sessions(gomock.Any(), models.Chinese, 2).Return([]models.StudySession{
					{Language: models.Chinese, SessionType: models.SessionQuiz, Score: 3, TotalQuestions: 4},
				}, nil)
			},
			wantCode: http.StatusOK,
			want:     `"total_questions":4`,
		},
		{
			name: "store failure",
			path: "/api/v1/russian/stats",
			f: func(ms *mock_rest.MockServiceI) {
				ms.EXPECT().Summary(gomock.Any(), models.Russian).Return(models.Summary{}, assert.AnError)
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "audio",
			path: "/api/v1/russian/words/кот/audio",
			f: func(ms *mock_rest.MockServiceI) {
				ms.EXPECT().Speak(gomock.Any(), models.Russian, "кот").Return([]byte("ID3"), nil)
			},
			wantCode: http.StatusOK,
			want:     "ID3",
		},
		{
			name: "audio unavailable",
			path: "/api/v1/russian/words/кот/audio",
			f: func(ms *mock_rest.MockServiceI) {
				ms.EXPECT().Speak(gomock.Any(), models.Russian, "кот").Return(nil, models.ErrSynthesis)
			},
			wantCode: http.StatusServiceUnavailable,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r := newRouterMock(ctrl, 0, func(ms *mock_rest.MockServiceI, _ *mock_rest.MockPinger) {
				if tt.f != nil {
					tt.f(ms)
				}
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.want != "" {
				assert.Contains(t, w.Body.String(), tt.want)
			}
		})
	}
}

func TestStatusFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{models.ErrUnsupportedLanguage, http.StatusBadRequest},
		{models.ErrExtraction, http.StatusBadRequest},
		{models.ErrInsufficientVocabulary, http.StatusUnprocessableEntity},
		{models.ErrDependencyUnavailable, http.StatusServiceUnavailable},
		{assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}
