// Package entity wraps decoded JSON objects in whitelisted, typed views.
//
// A Schema declares which attributes an entity exposes. Declarations are
// cumulative and usually made once at package init:
//
//	var Post = entity.NewSchema("Post").Attr("id", "title")
//
//	var User = entity.NewSchema("User").
//	    Attr("id", "first_name").
//	    AttrFunc("email", strings.ToLower).
//	    HasEntity("profile", Profile).
//	    HasEntities("posts", Post)
//
// Constructing an entity keeps only declared keys, after normalizing incoming
// key casing to snake_case (firstName and FirstName both become first_name):
//
//	u, err := User.New(map[string]any{"id": 1, "firstName": "Ann", "admin": true})
//	u.Get("first_name") // "Ann"
//	u.Raw()             // map[id:1 first_name:Ann]
//
// Nested entities and collections are rebuilt from the raw data on every
// access; nothing is memoized. Every entity carries a success flag so that a
// failed API call can still be represented as an entity of the expected
// schema (see Schema.FromResult).
package entity
