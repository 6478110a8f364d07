package services

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"commulink_server/models"
)

// ResolveCommunity derives the display record for a community identifier. There is no
// community table: "church-st-mary" becomes "Church St Mary". Any string is accepted and an
// empty identifier yields an empty name.
func ResolveCommunity(communityID string) models.Community {
	words := strings.Split(communityID, "-")
	for i, w := range words {
		words[i] = capitalize(w)
	}

	return models.Community{
		ID:   communityID,
		Name: strings.Join(words, " "),
		Type: models.CommunityTypeNeighborhood,
	}
}

func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}
