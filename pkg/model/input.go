package model

import (
	"encoding/json"
	"os"
	"slices"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// RawParticipant describes a participant's busy slots, either as a list of busy start times per day
// or as a full busy table per day (one flag per slot of the shared sequence)
type RawParticipant struct {
	Name  string
	Busy  map[string][]string
	Table map[string][]bool
}

type RawModelInput struct {
	Days         []string
	Start        string
	End          string
	Participants []RawParticipant
}

type Participant struct {
	Id   uint64
	Name string
	Busy [][]bool // Busy[day][slot] = true if and only if the participant is unavailable at that slot
}

// ModelInput is the availability model shared by the encoder and the interpreter.
// Every participant holds exactly len(Days) x len(Slots) flags.
type ModelInput struct {
	Days         []string
	Slots        []Slot
	Participants []Participant
}

// IsBusy reports whether the participant is unavailable at the given day and slot
func (input ModelInput) IsBusy(participant, day, slot uint64) bool {
	return input.Participants[participant].Busy[day][slot]
}

// SlotIndex returns the position of slot within the shared sequence
func (input ModelInput) SlotIndex(slot Slot) (uint64, bool) {
	index := slices.Index(input.Slots, slot)
	return uint64(index), index >= 0
}

// DayIndex returns the position of day within the day sequence
func (input ModelInput) DayIndex(day string) (uint64, bool) {
	index := slices.Index(input.Days, day)
	return uint64(index), index >= 0
}

func InputFromJson(file string) (ModelInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ModelInput{}, errors.Wrap(err, "cannot read input file")
	}
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return ModelInput{}, errors.Wrap(err, "cannot parse input file")
	}

	var rawInput RawModelInput
	if err := mapstructure.Decode(inputJson, &rawInput); err != nil {
		return ModelInput{}, errors.Wrap(err, "invalid input file")
	}
	return ProcessRawInput(rawInput)
}

func ProcessRawInput(rawInput RawModelInput) (ModelInput, error) {
	//** Manage days
	days := rawInput.Days
	if len(days) == 0 {
		days = Days
	}
	if duplicates := lo.FindDuplicates(days); len(duplicates) > 0 {
		return ModelInput{}, errors.Errorf("days must be unique: %v", duplicates)
	}

	//** Manage slots
	start, err := ParseSlot(rawInput.Start)
	if err != nil {
		return ModelInput{}, errors.Wrap(err, "invalid start")
	}
	end, err := ParseSlot(rawInput.End)
	if err != nil {
		return ModelInput{}, errors.Wrap(err, "invalid end")
	}
	slots, err := GenerateSlots(start, end)
	if err != nil {
		return ModelInput{}, err
	}

	input := ModelInput{
		Days:         slices.Clone(days),
		Slots:        slots,
		Participants: make([]Participant, 0, len(rawInput.Participants)),
	}

	//** Manage participants
	names := make(map[string]bool)
	for _, rawParticipant := range rawInput.Participants {
		if rawParticipant.Name == "" {
			return ModelInput{}, errors.Errorf("participant %d has no name", len(input.Participants))
		} else if names[rawParticipant.Name] {
			return ModelInput{}, errors.Errorf("duplicate participant %q", rawParticipant.Name)
		}
		names[rawParticipant.Name] = true

		busy, err := processBusy(input, rawParticipant)
		if err != nil {
			return ModelInput{}, errors.Wrapf(err, "participant %q", rawParticipant.Name)
		}

		input.Participants = append(input.Participants, Participant{
			Id:   uint64(len(input.Participants)),
			Name: rawParticipant.Name,
			Busy: busy,
		})
	}

	return input, nil
}

func processBusy(input ModelInput, rawParticipant RawParticipant) ([][]bool, error) {
	// Initialize a fully available table
	busy := make([][]bool, len(input.Days))
	for day := range busy {
		busy[day] = make([]bool, len(input.Slots))
	}

	for dayName, table := range rawParticipant.Table {
		day, ok := input.DayIndex(dayName)
		if !ok {
			return nil, errors.Errorf("unknown day %q", dayName)
		} else if len(table) != len(input.Slots) {
			return nil, errors.Errorf("day %q has %d slots, expected %d", dayName, len(table), len(input.Slots))
		}
		copy(busy[day], table)
	}

	for dayName, times := range rawParticipant.Busy {
		day, ok := input.DayIndex(dayName)
		if !ok {
			return nil, errors.Errorf("unknown day %q", dayName)
		}
		for _, value := range times {
			slot, err := ParseSlot(value)
			if err != nil {
				return nil, err
			}
			index, ok := input.SlotIndex(slot)
			if !ok {
				return nil, errors.Errorf("slot %v on %q is not part of the slot sequence", value, dayName)
			}
			busy[day][index] = true
		}
	}

	return busy, nil
}

// Raw converts the model back into its loader representation, using full busy tables
func (input ModelInput) Raw() RawModelInput {
	rawInput := RawModelInput{
		Days:         slices.Clone(input.Days),
		Participants: make([]RawParticipant, 0, len(input.Participants)),
	}
	if len(input.Slots) > 0 {
		rawInput.Start = input.Slots[0].String()
		rawInput.End = input.Slots[len(input.Slots)-1].Advance(1).String()
	}

	for _, participant := range input.Participants {
		table := make(map[string][]bool, len(input.Days))
		for day, name := range input.Days {
			table[name] = slices.Clone(participant.Busy[day])
		}
		rawInput.Participants = append(rawInput.Participants, RawParticipant{Name: participant.Name, Table: table})
	}
	return rawInput
}
