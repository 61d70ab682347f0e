// Package slug generates URL- and filename-safe slugs from arbitrary Unicode text.
//
// Every non-ASCII code point is transliterated to ASCII (é → e, Æ → AE,
// 北京 → Bei Jing), then a single left-to-right pass keeps ASCII letters and
// digits and collapses every other run of characters into one separator. The
// result never starts or ends with the separator and never repeats it.
//
// # Usage
//
//	s, err := slug.Slugify("My Test String!!!1!1")
//	// s == "my-test-string-1-1"
//
//	s = slug.Make("Æúű--cool?")
//	// "aeuu-cool"
//
// Make panics on invalid options, Slugify returns them as errors matching
// ErrInvalidArgument. Only an empty or non-ASCII separator, an unknown case
// mode, or a negative length is invalid. Any text is accepted.
//
// # Options
//
// Separator sets the string between words. It is emitted as a whole and may
// contain letters or digits:
//
//	slug.Make("My Test String", slug.Separator("_"))  // "my_test_string"
//	slug.Make("My Test String", slug.Separator("--")) // "my--test--string"
//	slug.Make("Hello World", slug.Separator("x"))     // "helloxworld"
//
// Case controls ASCII letter casing. CaseLower is the default:
//
//	slug.Make("Product Name", slug.PreserveCase()) // "Product-Name"
//	slug.Make("Product Name", slug.Uppercase())    // "PRODUCT-NAME"
//
// ExpandSymbols spells out "@" and "&":
//
//	slug.Make("user@example.com", slug.ExpandSymbols(true)) // "user-at-example-com"
//	slug.Make("You & Me", slug.ExpandSymbols(true))         // "you-and-me"
//
// CustomReplace turns substrings into words of their own, and StripChars
// deletes runes without breaking the word:
//
//	slug.Make("C++ & Go", slug.CustomReplace(map[string]string{"C++": "cpp", "&": "and"})) // "cpp-and-go"
//	slug.Make("Price: $100.00", slug.StripChars("$:"))                                   // "price-100-00"
//
// MaxLength and WithSuffix bound the length and add a random tail:
//
//	slug.Make("Very long title that exceeds limits", slug.MaxLength(15)) // "very-long-title"
//	slug.Make("Article Title", slug.WithSuffix(6))                      // "article-title-k7x2m4"
//
// # Transliteration
//
// The default Transliterator drops combining marks, consults the unidecode
// tables and falls back to NFKD decomposition. Code points it cannot map act
// as word breaks. Supply your own with WithTransliterator; Chain and Map help
// layer project-specific rules over the default:
//
//	t := slug.Chain(slug.Map(map[rune]string{'€': "eur"}), slug.Unidecode())
//	slug.Make("10€", slug.WithTransliterator(t)) // "10eur"
//
// # Unique slugs
//
// Allocator reserves slugs in a Store and appends a counter on collision:
//
//	a, _ := slug.NewAllocator(slug.NewMemoryStore())
//	a.Allocate(ctx, "posts", "Hello World") // "hello-world"
//	a.Allocate(ctx, "posts", "Hello World") // "hello-world-2"
//
// Redis and PostgreSQL stores live in the integration packages.
//
// # Configuration
//
// Config maps SLUG_* environment variables onto options:
//
//	var cfg slug.Config
//	config.MustLoad(&cfg)
//	opts, err := cfg.Options()
//
// Slugify is a pure function and safe for concurrent use.
package slug
