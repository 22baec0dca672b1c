package news

import "strings"

// classify picks the first category whose keywords appear in content
func classify(content string) Category {
	for _, rule := range categoryRules {
		if containsAny(content, rule.keywords) {
			return rule.category
		}
	}
	return DefaultCategory
}

// IsCategory reports whether c is one of the recognized categories
func IsCategory(c Category) bool {
	_, ok := categoryImages[c]
	return ok
}

// categoryImage returns the themed image for a category
func categoryImage(c Category) string {
	if img, ok := categoryImages[c]; ok {
		return img
	}
	return categoryImages[DefaultCategory]
}

// chooseImage keeps the article's own image unless it is missing or a placeholder
func chooseImage(imageURL string, c Category) string {
	if imageURL == "" ||
		strings.Contains(strings.ToLower(imageURL), "placeholder") ||
		strings.HasSuffix(strings.ToLower(imageURL), ".svg") {
		return categoryImage(c)
	}
	return imageURL
}
