package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputFromJson(t *testing.T) {
	//** Arrange
	file := filepath.Join(t.TempDir(), "input.json")
	content := `{
		"Start": "09:00",
		"End": "10:00",
		"Participants": [
			{"Name": "alice", "Busy": {"Lundi": ["09:00", "09:30"]}},
			{"Name": "bob", "Table": {"Mardi": [false, true, false, false]}}
		]
	}`
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

	//** Act
	input, err := InputFromJson(file)

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, Days, input.Days)
	assert.Len(t, input.Slots, 4)
	require.Len(t, input.Participants, 2)

	alice, bob := input.Participants[0], input.Participants[1]
	assert.Equal(t, "alice", alice.Name)
	assert.Equal(t, uint64(1), bob.Id)
	assert.Equal(t, []bool{true, false, true, false}, alice.Busy[0])
	assert.Equal(t, []bool{false, true, false, false}, bob.Busy[1])
	for day := range input.Days {
		assert.Len(t, alice.Busy[day], len(input.Slots))
	}
	assert.True(t, input.IsBusy(0, 0, 2))
	assert.False(t, input.IsBusy(1, 0, 1))
}

func TestInputFromJsonErrors(t *testing.T) {
	directory := t.TempDir()

	_, err := InputFromJson(filepath.Join(directory, "missing.json"))
	assert.Error(t, err)

	malformed := filepath.Join(directory, "malformed.json")
	require.NoError(t, os.WriteFile(malformed, []byte(`{"Start": `), 0o644))
	_, err = InputFromJson(malformed)
	assert.Error(t, err)

	mistyped := filepath.Join(directory, "mistyped.json")
	require.NoError(t, os.WriteFile(mistyped, []byte(`{"Start": "08:00", "End": "09:00", "Participants": 3}`), 0o644))
	_, err = InputFromJson(mistyped)
	assert.Error(t, err)
}

func TestProcessRawInputErrors(t *testing.T) {
	valid := func() RawModelInput {
		return RawModelInput{
			Start:        "08:00",
			End:          "09:00",
			Participants: []RawParticipant{{Name: "alice"}},
		}
	}

	tests := map[string]func(input *RawModelInput){
		"duplicate days":   func(input *RawModelInput) { input.Days = []string{"Lundi", "Lundi"} },
		"bad start":        func(input *RawModelInput) { input.Start = "8h" },
		"reversed range":   func(input *RawModelInput) { input.Start, input.End = input.End, input.Start },
		"unnamed":          func(input *RawModelInput) { input.Participants[0].Name = "" },
		"duplicate name":   func(input *RawModelInput) { input.Participants = append(input.Participants, RawParticipant{Name: "alice"}) },
		"unknown busy day": func(input *RawModelInput) { input.Participants[0].Busy = map[string][]string{"Samedi": {"08:00"}} },
		"off-grid slot":    func(input *RawModelInput) { input.Participants[0].Busy = map[string][]string{"Lundi": {"08:10"}} },
		"outside range":    func(input *RawModelInput) { input.Participants[0].Busy = map[string][]string{"Lundi": {"09:00"}} },
		"short table":      func(input *RawModelInput) { input.Participants[0].Table = map[string][]bool{"Lundi": {true}} },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			input := valid()
			mutate(&input)
			_, err := ProcessRawInput(input)
			assert.Error(t, err)
		})
	}

	_, err := ProcessRawInput(valid())
	assert.NoError(t, err)
}

func TestProcessRawInputCustomDays(t *testing.T) {
	input, err := ProcessRawInput(RawModelInput{
		Days:         []string{"Jeudi", "Vendredi"},
		Start:        "08:00",
		End:          "08:30",
		Participants: []RawParticipant{{Name: "alice", Busy: map[string][]string{"Vendredi": {"08:15"}}}},
	})
	require.NoError(t, err)

	day, ok := input.DayIndex("Vendredi")
	assert.True(t, ok)
	assert.Equal(t, uint64(1), day)
	_, ok = input.DayIndex("Lundi")
	assert.False(t, ok)
	assert.True(t, input.IsBusy(0, 1, 1))
}

func TestRawRoundTrip(t *testing.T) {
	//** Arrange
	slots, err := GenerateSlots(MustParseSlot("08:00"), MustParseSlot("12:00"))
	require.NoError(t, err)
	input := GenerateModelInput(3, 0.5, []string{"Lundi", "Mercredi"}, slots)

	//** Act
	processed, err := ProcessRawInput(input.Raw())

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, input, processed)
}
