package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPayload(t *testing.T) {
	t.Run("website button template serializes to the wire contract", func(t *testing.T) {
		tmpl := NewTemplate()
		tmpl.Title = "Promo"
		tmpl.Body = "New arrivals"
		tmpl = SwitchInteractive(tmpl, InteractiveButtons)

		tmpl, cerr := AddButton(tmpl, ButtonVisitWebsite)
		require.Nil(t, cerr)

		label := "Shop now"
		url := "https://x.com"
		tmpl = UpdateButton(tmpl, tmpl.Buttons[0].ID, ButtonPatch{Label: &label, URL: &url})

		require.Nil(t, ValidateButtons(tmpl.Buttons))

		var doc map[string]interface{}
		require.NoError(t, json.Unmarshal(MarshalPayload(tmpl), &doc))

		assert.Equal(t, "buttons", doc["interactiveType"])
		assert.Nil(t, doc["menu"])

		buttons, ok := doc["buttons"].([]interface{})
		require.True(t, ok)
		require.Len(t, buttons, 1)
		button := buttons[0].(map[string]interface{})
		assert.Equal(t, "visit_website", button["type"])
		assert.Equal(t, "Shop now", button["label"])
		assert.Equal(t, "https://x.com", button["url"])
	})

	t.Run("menu template mirrors into the placeholders bag", func(t *testing.T) {
		tmpl := NewTemplate()
		tmpl.Title = "Menu"
		tmpl.Body = "Pick"
		tmpl = SwitchInteractive(tmpl, InteractiveMenu)
		section := tmpl.Menu.Sections[0]
		title := "Option A"
		tmpl = UpdateMenuOption(tmpl, section.ID, section.Options[0].ID, OptionPatch{Title: &title})

		payload := BuildPayload(tmpl)
		require.NotNil(t, payload.Menu)
		assert.Equal(t, "menu", payload.InteractiveType)
		require.NotNil(t, payload.Placeholders)
		require.Len(t, payload.Placeholders.Options, 1)
		assert.Equal(t, "Option A", payload.Placeholders.Options[0].Title)
		assert.Equal(t, payload.Menu, payload.Placeholders.Menu)
	})

	t.Run("empty template still emits the scalar contract fields", func(t *testing.T) {
		var doc map[string]interface{}
		require.NoError(t, json.Unmarshal(MarshalPayload(NewTemplate()), &doc))

		assert.Equal(t, "message", doc["type"])
		assert.Equal(t, "Active", doc["status"])
		assert.Equal(t, "en", doc["lang"])
		assert.Equal(t, "none", doc["headerType"])
		assert.Equal(t, "none", doc["interactiveType"])
		assert.Equal(t, []interface{}{}, doc["buttons"])
	})

	t.Run("media header round-trips through the payload", func(t *testing.T) {
		tmpl := NewTemplate()
		tmpl.Header = Header{Kind: HeaderMedia, MediaType: "video", URL: "https://cdn.example.com/v.mp4"}

		payload := BuildPayload(tmpl)
		assert.Equal(t, "media", payload.HeaderType)
		assert.Equal(t, "video", payload.HeaderMediaType)
		assert.Equal(t, "https://cdn.example.com/v.mp4", payload.MediaURL)

		back := Normalize(MarshalPayload(tmpl))
		assert.Equal(t, tmpl.Header, back.Header)
	})
}
