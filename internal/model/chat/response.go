package chat

// ResponseKind discriminates the response variants a handler can receive.
type ResponseKind string

const (
	// ResponseText is a plain text reply.
	ResponseText ResponseKind = "text"
	// ResponseImages is an image-bearing reply, produced by the image
	// classification surface rather than the conversational paths.
	ResponseImages ResponseKind = "image_response"
)

// Image is a single base64-encoded image with a caption.
type Image struct {
	Data    string `json:"data"`
	Caption string `json:"caption"`
}

// Response is the tagged reply variant. Callers must switch on Kind and
// handle both arms.
type Response struct {
	Kind   ResponseKind
	Text   string
	Images []Image
}

// TextResponse wraps plain text in a Response.
func TextResponse(text string) Response {
	return Response{Kind: ResponseText, Text: text}
}

// ImagesResponse wraps a set of images in a Response.
func ImagesResponse(images []Image) Response {
	return Response{Kind: ResponseImages, Images: images}
}
