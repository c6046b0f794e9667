package serviceImp

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/RahulHansraj/FarmToMarket/entities"
	"github.com/RahulHansraj/FarmToMarket/pkg/ai"
	"github.com/RahulHansraj/FarmToMarket/pkg/assistant/service"
	cropRepo "github.com/RahulHansraj/FarmToMarket/pkg/crop/repository"
	farmRepo "github.com/RahulHansraj/FarmToMarket/pkg/farm/repository"
)

const systemPrompt = "You are a helpful agricultural assistant. You can update farm data in the database if the user provides details like crop name, quantity, and location. If data is missing (e.g. location), ask for it before updating. Be concise."

// Defaults applied when the model omits optional tool arguments.
const (
	defaultLocation    = "Unknown"
	defaultHarvestDate = "2024-01-01"
)

type assistantSvc struct {
	llm   ai.Client
	crops cropRepo.CropRepository
	farms farmRepo.FarmRepository
}

func New(llm ai.Client, crops cropRepo.CropRepository, farms farmRepo.FarmRepository) service.AssistantService {
	return &assistantSvc{llm: llm, crops: crops, farms: farms}
}

func farmDataTool() []ai.Tool {
	return []ai.Tool{{
		Type: "function",
		Function: ai.ToolFunction{
			Name:        "update_farm_data",
			Description: "Update farm data (crop, quantity, location) in the database based on user input",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"crop_name":    map[string]any{"type": "string", "description": "Name of the crop (e.g., Wheat, Rice)"},
					"quantity":     map[string]any{"type": "number", "description": "Quantity in kg or quintals (convert to kg)"},
					"location":     map[string]any{"type": "string", "description": "Location of the farm"},
					"harvest_date": map[string]any{"type": "string", "description": "Harvest date in YYYY-MM-DD format"},
				},
				"required": []string{"crop_name"},
			},
		},
	}}
}

type farmDataArgs struct {
	CropName    string   `json:"crop_name"`
	Quantity    *float64 `json:"quantity"`
	Location    string   `json:"location"`
	HarvestDate string   `json:"harvest_date"`
}

func (s *assistantSvc) Chat(message string, userID uint, promptAddition string) (string, error) {
	prompt := systemPrompt
	if promptAddition != "" {
		prompt += " " + promptAddition
	}
	msgs := []ai.Message{
		{Role: "system", Content: prompt},
		{Role: "user", Content: message},
	}

	reply, err := s.llm.Chat(msgs, farmDataTool())
	if err != nil {
		return "", err
	}

	if len(reply.ToolCalls) == 0 {
		return reply.Content, nil
	}

	tc := reply.ToolCalls[0]
	if tc.Function.Name != "update_farm_data" {
		return reply.Content, nil
	}

	var args farmDataArgs
	if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
		return "", fmt.Errorf("parse tool arguments: %w", err)
	}
	if err := s.recordFarmData(userID, args); err != nil {
		return "", err
	}

	// Report the result back and ask for the final user-facing reply.
	msgs = append(msgs, *reply)
	msgs = append(msgs, ai.Message{
		Role:       "tool",
		ToolCallID: tc.ID,
		Name:       tc.Function.Name,
		Content:    "Successfully updated database with farm data.",
	})
	final, err := s.llm.Chat(msgs, nil)
	if err != nil {
		return "", err
	}
	return final.Content, nil
}

func (s *assistantSvc) recordFarmData(userID uint, args farmDataArgs) error {
	crop, err := s.crops.FindOrCreate(args.CropName)
	if err != nil {
		return err
	}

	qty := 0.0
	if args.Quantity != nil {
		qty = *args.Quantity
	}
	loc := args.Location
	if loc == "" {
		loc = defaultLocation
	}
	date := args.HarvestDate
	if date == "" {
		date = defaultHarvestDate
	}

	d := &entities.FarmData{UserID: userID, CropID: crop.ID, QuantityKg: qty, Location: loc, HarvestDate: date}
	if err := s.farms.Create(d); err != nil {
		return err
	}
	log.Printf("[assistant] recorded farm data user=%d crop=%s qty=%.1f", userID, crop.Name, qty)
	return nil
}
