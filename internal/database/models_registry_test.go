package database

import (
	"testing"

	modelspkg "nhaf/internal/models"

	"github.com/stretchr/testify/require"
)

func TestPersistentModels_IncludesSingletonSettings(t *testing.T) {
	var chat, team, identity, theme, org, contact bool
	for _, model := range PersistentModels() {
		switch model.(type) {
		case *modelspkg.ChatSettings:
			chat = true
		case *modelspkg.TeamPageSettings:
			team = true
		case *modelspkg.SiteIdentity:
			identity = true
		case *modelspkg.SiteTheme:
			theme = true
		case *modelspkg.OrganizationInfo:
			org = true
		case *modelspkg.ContactInfo:
			contact = true
		}
	}
	require.True(t, chat && team && identity && theme && org && contact, "PersistentModels should include every singleton settings row")
}

func TestPersistentModels_ReferencedTablesFirst(t *testing.T) {
	index := map[string]int{}
	for i, model := range PersistentModels() {
		switch model.(type) {
		case *modelspkg.ProgramCategory:
			index["category"] = i
		case *modelspkg.Program:
			index["program"] = i
		case *modelspkg.GalleryImage:
			index["gallery"] = i
		}
	}
	require.Len(t, index, 3)
	require.Less(t, index["category"], index["program"])
	require.Less(t, index["program"], index["gallery"])
}
