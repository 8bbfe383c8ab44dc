// Package client provides the upstream API clients: the PokeAPI species
// client, the Funtranslations Shakespeare client and an OpenAI-backed
// alternative translator.
package client

import "github.com/pokespeare/pokespeare"

// DescriptionClient is the interface for description sources.
// This is an alias to the main package interface for convenience.
type DescriptionClient = pokespeare.DescriptionClient

// TranslationClient is an alias to the main package interface.
type TranslationClient = pokespeare.TranslationClient
