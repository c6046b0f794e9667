package serviceImp

import (
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/RahulHansraj/FarmToMarket/database"
	"github.com/RahulHansraj/FarmToMarket/entities"
	"github.com/RahulHansraj/FarmToMarket/pkg/ai"
	cropRepoImp "github.com/RahulHansraj/FarmToMarket/pkg/crop/repositoryImp"
	farmRepoImp "github.com/RahulHansraj/FarmToMarket/pkg/farm/repositoryImp"
)

// scripted plays back canned completions and records what it was asked.
type scripted struct {
	replies []ai.Message
	calls   [][]ai.Message
	tools   [][]ai.Tool
}

func (s *scripted) Chat(msgs []ai.Message, tools []ai.Tool) (*ai.Message, error) {
	s.calls = append(s.calls, msgs)
	s.tools = append(s.tools, tools)
	r := s.replies[len(s.calls)-1]
	return &r, nil
}

func toolCallMsg(args string) ai.Message {
	tc := ai.ToolCall{ID: "call-1", Type: "function"}
	tc.Function.Name = "update_farm_data"
	tc.Function.Arguments = args
	return ai.Message{Role: "assistant", ToolCalls: []ai.ToolCall{tc}}
}

func setup(t *testing.T, llm ai.Client) (*gorm.DB, func(string, uint, string) (string, error)) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	svc := New(llm, cropRepoImp.New(db), farmRepoImp.New(db))
	return db, svc.Chat
}

func TestChatPlainReply(t *testing.T) {
	llm := &scripted{replies: []ai.Message{{Role: "assistant", Content: "Hello farmer"}}}
	db, chat := setup(t, llm)

	out, err := chat("hi", 1, "")
	require.NoError(t, err)
	require.Equal(t, "Hello farmer", out)
	require.Len(t, llm.calls, 1)

	// the tool schema always rides along on the first call
	require.Len(t, llm.tools[0], 1)
	require.Equal(t, "update_farm_data", llm.tools[0][0].Function.Name)

	// no write happened
	var n int64
	require.NoError(t, db.Model(&entities.FarmData{}).Count(&n).Error)
	require.Zero(t, n)
}

func TestChatToolCallWritesFarmData(t *testing.T) {
	llm := &scripted{replies: []ai.Message{
		toolCallMsg(`{"crop_name":"Tomato","quantity":1200,"location":"Nashik","harvest_date":"2025-02-10"}`),
		{Role: "assistant", Content: "Recorded 1200 kg of tomatoes from Nashik."},
	}}
	db, chat := setup(t, llm)

	out, err := chat("I harvested 1200 kg of tomatoes in Nashik on Feb 10", 7, "")
	require.NoError(t, err)
	require.Equal(t, "Recorded 1200 kg of tomatoes from Nashik.", out)
	require.Len(t, llm.calls, 2)

	// the follow-up completion sees the tool result
	second := llm.calls[1]
	last := second[len(second)-1]
	require.Equal(t, "tool", last.Role)
	require.Equal(t, "call-1", last.ToolCallID)
	require.Nil(t, llm.tools[1])

	// crop created lazily, farm data row written
	var crop entities.Crop
	require.NoError(t, db.Where("name = ?", "Tomato").First(&crop).Error)
	var row entities.FarmData
	require.NoError(t, db.First(&row).Error)
	require.Equal(t, uint(7), row.UserID)
	require.Equal(t, crop.ID, row.CropID)
	require.Equal(t, 1200.0, row.QuantityKg)
	require.Equal(t, "Nashik", row.Location)
	require.Equal(t, "2025-02-10", row.HarvestDate)
}

func TestChatToolCallDefaults(t *testing.T) {
	llm := &scripted{replies: []ai.Message{
		toolCallMsg(`{"crop_name":"Okra"}`),
		{Role: "assistant", Content: "Saved."},
	}}
	db, chat := setup(t, llm)

	_, err := chat("note down my okra harvest", 1, "")
	require.NoError(t, err)

	var row entities.FarmData
	require.NoError(t, db.First(&row).Error)
	require.Equal(t, 0.0, row.QuantityKg)
	require.Equal(t, "Unknown", row.Location)
	require.Equal(t, "2024-01-01", row.HarvestDate)
}

func TestChatReusesExistingCrop(t *testing.T) {
	llm := &scripted{replies: []ai.Message{
		toolCallMsg(`{"crop_name":"wheat"}`),
		{Role: "assistant", Content: "Saved."},
	}}
	db, chat := setup(t, llm)
	require.NoError(t, db.Create(&entities.Crop{Name: "Wheat"}).Error)

	_, err := chat("record my wheat harvest", 1, "")
	require.NoError(t, err)

	var n int64
	require.NoError(t, db.Model(&entities.Crop{}).Count(&n).Error)
	require.EqualValues(t, 1, n)
}

func TestChatAppendsPromptAddition(t *testing.T) {
	llm := &scripted{replies: []ai.Message{{Role: "assistant", Content: "ok"}}}
	_, chat := setup(t, llm)

	_, err := chat("hi", 1, "Answer in Hindi.")
	require.NoError(t, err)
	require.Contains(t, llm.calls[0][0].Content, "Answer in Hindi.")
	require.Equal(t, "system", llm.calls[0][0].Role)
}
