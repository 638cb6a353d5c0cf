package utils

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"
	"unicode"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 30
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

// ValidateUsername validates username format
// Rules: 3-30 characters, letters, numbers, underscores only
func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)

	if len(username) < MinUsernameLength {
		return &ValidationError{Field: "username", Message: "Username must be at least 3 characters"}
	}

	if len(username) > MaxUsernameLength {
		return &ValidationError{Field: "username", Message: "Username must be at most 30 characters"}
	}

	if !usernameRegex.MatchString(username) {
		return &ValidationError{Field: "username", Message: "Username can only contain letters, numbers, and underscores"}
	}

	// Check if it starts with a letter or number (not underscore)
	if len(username) > 0 && !(unicode.IsLetter(rune(username[0])) || unicode.IsNumber(rune(username[0]))) {
		return &ValidationError{Field: "username", Message: "Username must start with a letter or number"}
	}

	return nil
}

// NormalizeUsername converts username to lowercase for storage
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var adjectives = []string{
	"adorable", "adventurous", "aggressive", "alert", "amusing", "ancient", "angry", "anxious", "artistic", "astonishing",
	"attractive", "awesome", "awkward", "beautiful", "bewildered", "bold", "bossy", "bouncy", "brave", "bright",
	"brilliant", "broad", "bumpy", "calm", "careful", "charming", "cheerful", "clever", "clumsy", "colorful",
	"compassionate", "confused", "courageous", "cozy", "crazy", "creepy", "crispy", "curious", "cute", "daring",
	"dazzling", "delightful", "determined", "dirty", "dynamic", "eager", "ecstatic", "efficient", "elegant", "energetic",
	"enormous", "enthusiastic", "fabulous", "fancy", "fantastic", "fearless", "fierce", "fluffy", "fortunate", "fragile",
	"friendly", "funny", "fuzzy", "gentle", "gloomy", "glorious", "graceful", "grateful", "greedy", "happy",
	"harmonious", "helpful", "hilarious", "honest", "hopeful", "humble", "hungry", "imaginative", "important", "impressive",
	"incredible", "intelligent", "jolly", "joyful", "jumpy", "kind", "lively", "lonely", "loud", "lovely",
	"lucky", "magnificent", "massive", "melodic", "mighty", "mysterious", "nervous", "noisy", "obedient", "outstanding",
	"peaceful", "playful", "powerful", "quick", "radiant", "robust", "silly", "tender", "vibrant", "witty",
}

var animals = []string{
	"aardvark", "alligator", "alpaca", "antelope", "armadillo", "baboon", "badger", "bat", "bear", "beaver",
	"bison", "boar", "buffalo", "butterfly", "camel", "capybara", "caribou", "cat", "caterpillar", "cheetah",
	"chimpanzee", "chinchilla", "cobra", "cougar", "cow", "coyote", "crab", "crocodile", "crow", "deer",
	"dingo", "dog", "dolphin", "donkey", "dragonfly", "duck", "eagle", "echidna", "eel", "elephant",
	"elk", "falcon", "ferret", "flamingo", "fox", "frog", "gazelle", "gecko", "giraffe", "goat",
	"goose", "gorilla", "grasshopper", "hamster", "hare", "hedgehog", "hippopotamus", "hornet", "horse", "hummingbird",
	"hyena", "ibex", "iguana", "jackal", "jaguar", "jellyfish", "kangaroo", "kingfisher", "koala", "komodo_dragon",
	"lemur", "leopard", "lion", "lizard", "lobster", "lynx", "macaw", "manatee", "mandrill", "meerkat",
	"mole", "mongoose", "monkey", "moose", "narwhal", "newt", "ocelot", "octopus", "okapi", "orangutan",
	"otter", "owl", "panda", "panther", "parrot", "peacock", "pelican", "penguin", "pigeon", "platypus",
	"polar_bear", "porcupine", "quail", "quokka", "rabbit", "raccoon", "raven", "reindeer", "rhinoceros", "salamander",
}

// RandomUsername builds an adjective_animal username candidate.
// Uniqueness is checked by the caller against the database.
func RandomUsername() string {
	return randomFrom(adjectives) + "_" + randomFrom(animals)
}

func randomFrom(list []string) string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(list))))
	if err != nil {
		// crypto/rand should not fail; fall back to the first entry
		return list[0]
	}
	return list[n.Int64()]
}
