package media

// Info 是外部媒体代理为一个游戏返回的媒体资料。
// 字段来自YouTube oEmbed响应，全部为展示用途。
type Info struct {
	// Ref 是目录条目携带的YouTube视频ID
	Ref string `json:"ref"`

	// VideoURL 是可直接打开的观看链接
	VideoURL string `json:"video_url"`

	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// oembedResponse 对应YouTube oEmbed接口的JSON响应（只取需要的字段）
type oembedResponse struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	ThumbnailURL string `json:"thumbnail_url"`
}
