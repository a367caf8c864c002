package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwitchInteractive(t *testing.T) {
	t.Run("switching to menu builds the default starter menu", func(t *testing.T) {
		tmpl := SwitchInteractive(NewTemplate(), InteractiveMenu)
		assert.Equal(t, InteractiveMenu, tmpl.Interactive)
		assert.Nil(t, tmpl.Buttons)
		require.NotNil(t, tmpl.Menu)
		assert.Equal(t, DefaultMenuButtonLabel, tmpl.Menu.ButtonLabel)
		require.Len(t, tmpl.Menu.Sections, 1)
		require.Len(t, tmpl.Menu.Sections[0].Options, 1)
		assert.Empty(t, tmpl.Menu.Sections[0].Options[0].Title)
	})

	t.Run("exactly one interactive shape survives any switch sequence", func(t *testing.T) {
		tmpl := NewTemplate()
		for _, kind := range []InteractiveKind{
			InteractiveButtons, InteractiveMenu, InteractiveButtons,
			InteractiveNone, InteractiveMenu, InteractiveMenu,
		} {
			tmpl = SwitchInteractive(tmpl, kind)
			switch tmpl.Interactive {
			case InteractiveButtons:
				assert.Nil(t, tmpl.Menu)
				assert.NotNil(t, tmpl.Buttons)
			case InteractiveMenu:
				assert.Nil(t, tmpl.Buttons)
				assert.NotNil(t, tmpl.Menu)
			default:
				assert.Nil(t, tmpl.Buttons)
				assert.Nil(t, tmpl.Menu)
			}
		}
	})

	t.Run("switching to menu keeps existing menu data", func(t *testing.T) {
		tmpl := SwitchInteractive(NewTemplate(), InteractiveMenu)
		tmpl = SetMenuButtonLabel(tmpl, "Choose")
		sectionID := tmpl.Menu.Sections[0].ID

		tmpl = SwitchInteractive(tmpl, InteractiveMenu)
		assert.Equal(t, "Choose", tmpl.Menu.ButtonLabel)
		assert.Equal(t, sectionID, tmpl.Menu.Sections[0].ID)
	})
}

func TestButtonMutations(t *testing.T) {
	t.Run("a fourth quick reply is refused and state is untouched", func(t *testing.T) {
		tmpl := SwitchInteractive(NewTemplate(), InteractiveButtons)
		var cerr *CapacityError
		for i := 0; i < MaxQuickReplies; i++ {
			tmpl, cerr = AddButton(tmpl, ButtonQuickReply)
			require.Nil(t, cerr)
		}

		after, cerr := AddButton(tmpl, ButtonQuickReply)
		require.NotNil(t, cerr)
		assert.Equal(t, "buttons/quick_reply_capacity", cerr.Code)
		assert.Len(t, after.Buttons, MaxQuickReplies)
	})

	t.Run("quick replies and CTA buttons never mix", func(t *testing.T) {
		tmpl := SwitchInteractive(NewTemplate(), InteractiveButtons)
		tmpl, cerr := AddButton(tmpl, ButtonQuickReply)
		require.Nil(t, cerr)

		_, cerr = AddButton(tmpl, ButtonVisitWebsite)
		require.NotNil(t, cerr)
		assert.Equal(t, "buttons/mixed_kinds", cerr.Code)
	})

	t.Run("one website and one phone button coexist", func(t *testing.T) {
		tmpl := SwitchInteractive(NewTemplate(), InteractiveButtons)
		tmpl, cerr := AddButton(tmpl, ButtonVisitWebsite)
		require.Nil(t, cerr)
		tmpl, cerr = AddButton(tmpl, ButtonCallPhone)
		require.Nil(t, cerr)
		assert.Len(t, tmpl.Buttons, 2)

		_, cerr = AddButton(tmpl, ButtonVisitWebsite)
		require.NotNil(t, cerr)
		assert.Equal(t, "buttons/website_capacity", cerr.Code)
	})

	t.Run("labels clamp at write time", func(t *testing.T) {
		tmpl := SwitchInteractive(NewTemplate(), InteractiveButtons)
		tmpl, _ = AddButton(tmpl, ButtonQuickReply)

		long := strings.Repeat("y", MaxButtonLabelLen+10)
		tmpl = UpdateButton(tmpl, tmpl.Buttons[0].ID, ButtonPatch{Label: &long})
		assert.Len(t, tmpl.Buttons[0].Label, MaxButtonLabelLen)
	})

	t.Run("removing an unknown id is a no-op", func(t *testing.T) {
		tmpl := SwitchInteractive(NewTemplate(), InteractiveButtons)
		tmpl, _ = AddButton(tmpl, ButtonQuickReply)
		after := RemoveButton(tmpl, "missing")
		assert.Equal(t, tmpl.Buttons, after.Buttons)
	})

	t.Run("mutations never touch the input value", func(t *testing.T) {
		tmpl := SwitchInteractive(NewTemplate(), InteractiveButtons)
		tmpl, _ = AddButton(tmpl, ButtonQuickReply)
		before := tmpl.Buttons[0].Label

		newLabel := "changed"
		_ = UpdateButton(tmpl, tmpl.Buttons[0].ID, ButtonPatch{Label: &newLabel})
		assert.Equal(t, before, tmpl.Buttons[0].Label)
	})
}

func TestMenuMutations(t *testing.T) {
	starter := func(t *testing.T) Template {
		return SwitchInteractive(NewTemplate(), InteractiveMenu)
	}

	t.Run("options cap at ten across all sections", func(t *testing.T) {
		tmpl := starter(t)
		sectionID := tmpl.Menu.Sections[0].ID

		var cerr *CapacityError
		for tmpl.Menu.OptionCount() < MaxMenuOptions {
			tmpl, cerr = AddMenuOption(tmpl, sectionID)
			require.Nil(t, cerr)
		}

		after, cerr := AddMenuOption(tmpl, sectionID)
		require.NotNil(t, cerr)
		assert.Equal(t, "menu/options_capacity", cerr.Code)
		assert.Equal(t, MaxMenuOptions, after.Menu.OptionCount())
	})

	t.Run("the last section cannot be removed", func(t *testing.T) {
		tmpl := starter(t)
		after, cerr := RemoveMenuSection(tmpl, tmpl.Menu.Sections[0].ID)
		require.NotNil(t, cerr)
		assert.Equal(t, "menu/last_section", cerr.Code)
		assert.Len(t, after.Menu.Sections, 1)
	})

	t.Run("a second section can be added and removed", func(t *testing.T) {
		tmpl := AddMenuSection(starter(t))
		require.Len(t, tmpl.Menu.Sections, 2)
		assert.Empty(t, tmpl.Menu.Sections[1].Options)

		tmpl, cerr := RemoveMenuSection(tmpl, tmpl.Menu.Sections[1].ID)
		require.Nil(t, cerr)
		assert.Len(t, tmpl.Menu.Sections, 1)
	})

	t.Run("removing the only option succeeds and save catches it", func(t *testing.T) {
		tmpl := starter(t)
		tmpl.Title = "T"
		tmpl.Body = "b"
		section := tmpl.Menu.Sections[0]

		tmpl = RemoveMenuOption(tmpl, section.ID, section.Options[0].ID)
		assert.Empty(t, tmpl.Menu.Sections[0].Options)

		err := ValidateTemplate(tmpl)
		require.NotNil(t, err)
		assert.Equal(t, "menu/empty_section", err.Code)
	})

	t.Run("option patches clamp title and description", func(t *testing.T) {
		tmpl := starter(t)
		section := tmpl.Menu.Sections[0]

		title := strings.Repeat("t", MaxOptionTitleLen+5)
		desc := strings.Repeat("d", MaxOptionDescLen+5)
		tmpl = UpdateMenuOption(tmpl, section.ID, section.Options[0].ID, OptionPatch{Title: &title, Description: &desc})

		opt := tmpl.Menu.Sections[0].Options[0]
		assert.Len(t, opt.Title, MaxOptionTitleLen)
		assert.Len(t, opt.Description, MaxOptionDescLen)
	})

	t.Run("section rename clamps the title", func(t *testing.T) {
		tmpl := starter(t)
		tmpl = UpdateMenuSection(tmpl, tmpl.Menu.Sections[0].ID, strings.Repeat("s", MaxSectionTitleLen+3))
		assert.Len(t, tmpl.Menu.Sections[0].Title, MaxSectionTitleLen)
	})
}
