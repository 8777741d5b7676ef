package models

// Collection names shared by every storage backend.
const (
	CollectionUsers           = "saasuser"
	CollectionBlogPosts       = "blogpost"
	CollectionContactMessages = "contactmessage"
)
