package recipe

const photoBase = "https://d3jbb8n5wk0qxi.cloudfront.net/photos/"

// CompleteSample returns a fresh three-recipe collection with every field set.
func CompleteSample() *Collection {
	return NewCollection([]*Recipe{
		apamBalik(),
		New(Fields{
			Cuisine:       String("British"),
			Name:          String("Apple & Blackberry Crumble"),
			PhotoURLLarge: String(photoBase + "535dfe4e-5d61-4db6-ba8f-7a27b1214f5d/large.jpg"),
			PhotoURLSmall: String(photoBase + "535dfe4e-5d61-4db6-ba8f-7a27b1214f5d/small.jpg"),
			SourceURL:     String("https://www.bbcgoodfood.com/recipes/778642/apple-and-blackberry-crumble"),
			UUID:          String("599344f4-3c5c-4cca-b914-2210e3b3312f"),
			YoutubeURL:    String("https://www.youtube.com/watch?v=4vhcOwVBDO4"),
		}),
		New(Fields{
			Cuisine:       String("British"),
			Name:          String("Apple Frangipan Tart"),
			PhotoURLLarge: String(photoBase + "7276e9f9-02a2-47a0-8d70-d91bdb149e9e/large.jpg"),
			PhotoURLSmall: String(photoBase + "7276e9f9-02a2-47a0-8d70-d91bdb149e9e/small.jpg"),
			SourceURL:     String("https://www.bbcgoodfood.com/recipes/778642/apple-and-blackberry-crumble"),
			UUID:          String("74f6d4eb-da50-4901-94d1-deae2d8af1d1"),
			YoutubeURL:    String("https://www.youtube.com/watch?v=rp8Slv4INLk"),
		}),
	})
}

// MalformedSample returns a fresh collection whose second recipe is missing
// its name, photos, source and video.
func MalformedSample() *Collection {
	return NewCollection([]*Recipe{
		apamBalik(),
		New(Fields{
			Cuisine: String("British"),
			UUID:    String("599344f4-3c5c-4cca-b914-2210e3b3312f"),
		}),
		New(Fields{
			Cuisine:       String("British"),
			Name:          String("Apple Frangipan Tart"),
			PhotoURLLarge: String(photoBase + "7276e9f9-02a2-47a0-8d70-d91bdb149e9e/large.jpg"),
			PhotoURLSmall: String(photoBase + "7276e9f9-02a2-47a0-8d70-d91bdb149e9e/small.jpg"),
			SourceURL:     String("https://www.nyonyacooking.com/recipes/apam-balik~SJ5WuvsDf9WQ"),
			UUID:          String("74f6d4eb-da50-4901-94d1-deae2d8af1d1"),
			YoutubeURL:    String("https://www.youtube.com/watch?v=rp8Slv4INLk"),
		}),
	})
}

func EmptySample() *Collection {
	return NewCollection(nil)
}

func apamBalik() *Recipe {
	return New(Fields{
		Cuisine:       String("Malaysian"),
		Name:          String("Apam Balik"),
		PhotoURLLarge: String(photoBase + "b9ab0071-b281-4bee-b361-ec340d405320/large.jpg"),
		PhotoURLSmall: String(photoBase + "b9ab0071-b281-4bee-b361-ec340d405320/small.jpg"),
		SourceURL:     String("https://www.nyonyacooking.com/recipes/apam-balik~SJ5WuvsDf9WQ"),
		UUID:          String("0c6ca6e7-e32a-4053-b824-1dbf749910d8"),
		YoutubeURL:    String("https://www.youtube.com/watch?v=6R8ffRRJcrg"),
	})
}
