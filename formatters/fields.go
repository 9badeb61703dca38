package formatters

import "github.com/kova98/karmakaze/enums"

type transform int

const (
	copied transform = iota
	timestamp
	iconURL
	nestedUser
)

type field struct {
	name   string
	source string
	kind   transform
}

func same(name string) field            { return field{name, name, copied} }
func renamed(name, source string) field { return field{name, source, copied} }
func timed(name string) field           { return field{name, name, timestamp} }
func icon(name, source string) field    { return field{name, source, iconURL} }
func user(name, source string) field    { return field{name, source, nestedUser} }

var commentFields = []field{
	same("body"),
	same("id"),
	same("author"),
	renamed("author_is_premium", "author_premium"),
	renamed("upvotes", "ups"),
	renamed("downvotes", "downs"),
	renamed("subreddit", "subreddit_name_prefixed"),
	same("subreddit_type"),
	renamed("post_id", "link_id"),
	renamed("post_title", "link_title"),
	renamed("is_nsfw", "over_18"),
	renamed("is_edited", "edited"),
	same("score"),
	renamed("hidden_score", "score_hidden"),
	same("gilded"),
	renamed("is_stickied", "stickied"),
	renamed("is_locked", "locked"),
	renamed("is_archived", "archived"),
	same("subreddit_id"),
	same("author_is_blocked"),
	same("link_author"),
	same("replies"),
	same("saved"),
	same("can_mod_post"),
	same("send_replies"),
	same("parent_id"),
	same("author_fullname"),
	same("controversiality"),
	same("body_html"),
	same("link_permalink"),
	same("name"),
	same("treatment_tags"),
	same("awarders"),
	same("all_awardings"),
	same("quarantine"),
	same("link_url"),
	timed("created"),
}

var postFields = []field{
	same("author"),
	same("title"),
	renamed("body", "selftext"),
	same("id"),
	same("subreddit"),
	same("subreddit_id"),
	same("subreddit_type"),
	same("subreddit_subscribers"),
	renamed("upvotes", "ups"),
	same("upvote_ratio"),
	renamed("downvotes", "downs"),
	same("thumbnail"),
	same("gilded"),
	same("is_video"),
	renamed("is_nsfw", "over_18"),
	renamed("is_shareable", "is_reddit_media_domain"),
	same("is_robot_indexable"),
	same("permalink"),
	renamed("is_locked", "locked"),
	renamed("is_archived", "archived"),
	same("domain"),
	same("score"),
	renamed("comments", "num_comments"),
	same("saved"),
	same("clicked"),
	same("hidden"),
	same("pwls"),
	same("hide_score"),
	same("num_crossposts"),
	same("parent_whitelist_status"),
	same("name"),
	same("quarantine"),
	same("link_flair_text_color"),
	same("is_original_content"),
	same("can_mod_post"),
	same("is_created_from_ads_ui"),
	same("author_premium"),
	same("is_self"),
	same("link_flair_type"),
	same("wls"),
	same("author_flair_type"),
	same("allow_live_comments"),
	same("no_follow"),
	same("is_crosspostable"),
	same("pinned"),
	same("author_is_blocked"),
	same("link_flair_background_color"),
	same("author_fullname"),
	same("whitelist_status"),
	timed("edited"),
	same("url"),
	timed("created"),
}

var subredditFields = []field{
	same("title"),
	same("display_name"),
	same("id"),
	renamed("description", "public_description"),
	same("submit_text"),
	same("submit_text_html"),
	icon("icon", "icon_img"),
	renamed("type", "subreddit_type"),
	same("subscribers"),
	renamed("current_active_users", "accounts_active"),
	renamed("is_nsfw", "over18"),
	renamed("language", "lang"),
	same("whitelist_status"),
	same("url"),
	same("user_flair_position"),
	same("spoilers_enabled"),
	same("allow_galleries"),
	same("show_media_preview"),
	same("allow_videogifs"),
	same("allow_videos"),
	same("allow_images"),
	same("allow_polls"),
	same("public_traffic"),
	same("description_html"),
	same("emojis_enabled"),
	same("primary_color"),
	same("key_color"),
	same("banner_background_color"),
	same("icon_size"),
	same("header_size"),
	same("banner_size"),
	same("link_flair_enabled"),
	same("restrict_posting"),
	same("restrict_commenting"),
	same("submission_type"),
	same("free_form_reports"),
	same("wiki_enabled"),
	icon("community_icon", "community_icon"),
	same("banner_background_image"),
	same("mobile_banner_image"),
	same("allow_discovery"),
	same("is_crosspostable_subreddit"),
	same("notification_level"),
	same("suggested_comment_sort"),
	same("disable_contributor_requests"),
	same("community_reviewed"),
	same("original_content_tag_enabled"),
	same("has_menu_widget"),
	same("videostream_links_count"),
	timed("created"),
}

var userFields = []field{
	same("name"),
	same("id"),
	renamed("avatar_url", "icon_img"),
	renamed("is_verified", "verified"),
	same("has_verified_email"),
	same("is_gold"),
	same("is_mod"),
	same("is_blocked"),
	same("is_employee"),
	renamed("hidden_from_bots", "hide_from_robots"),
	renamed("accepts_followers", "accept_followers"),
	same("comment_karma"),
	same("link_karma"),
	same("awardee_karma"),
	same("total_karma"),
	same("subreddit"),
	same("is_friend"),
	same("snoovatar_img"),
	same("awarder_karma"),
	same("pref_show_snoovatar"),
	same("has_subscribed"),
	timed("created"),
}

var wikiPageFields = []field{
	same("revision_id"),
	timed("revision_date"),
	renamed("content_markdown", "content_md"),
	user("revised_by", "revision_by"),
	same("kind"),
	same("may_revise"),
	same("reason"),
	same("content_html"),
}

func table(entity enums.Entity) []field {
	switch entity {
	case enums.EntityComments:
		return commentFields
	case enums.EntityPost, enums.EntityPosts:
		return postFields
	case enums.EntitySubreddit, enums.EntitySubreddits:
		return subredditFields
	case enums.EntityUser, enums.EntityUsers:
		return userFields
	case enums.EntityWikiPage:
		return wikiPageFields
	}
	return nil
}

// Fields returns the public field names every record of entity carries,
// in table order. Listing entities share the table of their elements.
func Fields(entity enums.Entity) []string {
	fields := table(entity)
	if fields == nil {
		return nil
	}
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.name
	}
	return names
}
