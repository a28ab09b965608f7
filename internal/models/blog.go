package models

import "time"

// BlogStatus is the publication state of a post.
type BlogStatus string

const (
	BlogDraft     BlogStatus = "draft"
	BlogPublished BlogStatus = "published"
)

// BlogPost is an editorial article. Slug is unique; AuthorEmail is
// stamped from the authenticated caller, PublishedAt on the first
// transition to published.
type BlogPost struct {
	Base           `bson:",inline"`
	Title          string     `json:"title"                     bson:"title"`
	Slug           string     `json:"slug"                      bson:"slug"`
	CoverImage     string     `json:"cover_image,omitempty"     bson:"cover_image,omitempty"`
	Content        string     `json:"content"                   bson:"content"`
	Tags           []string   `json:"tags"                      bson:"tags"`
	Status         BlogStatus `json:"status"                    bson:"status"`
	AuthorEmail    string     `json:"author_email,omitempty"    bson:"author_email,omitempty"`
	PublishedAt    *time.Time `json:"published_at,omitempty"    bson:"published_at,omitempty"`
	SEOTitle       string     `json:"seo_title,omitempty"       bson:"seo_title,omitempty"`
	SEODescription string     `json:"seo_description,omitempty" bson:"seo_description,omitempty"`
}

// MediaStorage describes where a media object's bytes live.
type MediaStorage string

const (
	MediaGridFS   MediaStorage = "gridfs"
	MediaExternal MediaStorage = "external"
)

// Media holds upload metadata only; the binary content is not
// persisted by this system.
type Media struct {
	Base        `bson:",inline"`
	Filename    string       `json:"filename"          bson:"filename"`
	ContentType string       `json:"content_type"      bson:"content_type"`
	Size        int64        `json:"size"              bson:"size"`
	Storage     MediaStorage `json:"storage"           bson:"storage"`
	URL         string       `json:"url,omitempty"     bson:"url,omitempty"`
	Alt         string       `json:"alt,omitempty"     bson:"alt,omitempty"`
	Caption     string       `json:"caption,omitempty" bson:"caption,omitempty"`
}
