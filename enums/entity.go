package enums

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownEntity = errors.New("unknown entity")

// Entity names a shape the normaliser knows how to unwrap and format.
// Plural entities are listings of their singular counterpart.
type Entity string

const (
	EntityInvalid    Entity = ""
	EntityComments   Entity = "comments"
	EntityPost       Entity = "post"
	EntityPosts      Entity = "posts"
	EntitySubreddit  Entity = "subreddit"
	EntitySubreddits Entity = "subreddits"
	EntityUser       Entity = "user"
	EntityUsers      Entity = "users"
	EntityWikiPage   Entity = "wiki_page"
)

var Entities = []Entity{
	EntityComments,
	EntityPost,
	EntityPosts,
	EntitySubreddit,
	EntitySubreddits,
	EntityUser,
	EntityUsers,
	EntityWikiPage,
}

// ParseEntity accepts the entity name in any case, with "-" or "_" in wiki_page.
func ParseEntity(s string) (Entity, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	if name == "wikipage" || name == "wiki" {
		name = string(EntityWikiPage)
	}
	for _, e := range Entities {
		if string(e) == name {
			return e, nil
		}
	}
	return EntityInvalid, fmt.Errorf("%w: %q", ErrUnknownEntity, s)
}

// IsList reports whether the entity normalises to a sequence of records.
func (e Entity) IsList() bool {
	switch e {
	case EntityComments, EntityPosts, EntitySubreddits, EntityUsers:
		return true
	}
	return false
}
