package enums

// Kind is the discriminator Reddit puts on every envelope.
type Kind string

const (
	KindUnknown   Kind = ""
	KindListing   Kind = "Listing"
	KindComment   Kind = "t1"
	KindAccount   Kind = "t2"
	KindLink      Kind = "t3"
	KindMessage   Kind = "t4"
	KindSubreddit Kind = "t5"
	KindAward     Kind = "t6"
	KindMore      Kind = "more"
	KindWikiPage  Kind = "wikipage"
)
