package grouping

import (
	"github.com/kertapati/horizon-sub000/src/domain"
)

// rule maps one display group to the keywords that pull an item into it.
// Matching is first-rule-wins, so order within a category is part of the
// contract: reordering rules changes classification.
type rule struct {
	Name     string
	Keywords []string
}

var rulesByCategory = map[domain.Category][]rule{
	domain.CategoryAdventure: {
		{Name: "Water", Keywords: []string{"dive", "diving", "scuba", "snorkel", "surf", "kayak", "raft", "sail", "reef", "swim"}},
		{Name: "Mountain", Keywords: []string{"summit", "climb", "hike", "trek", "peak", "mountain", "via ferrata", "boulder"}},
		{Name: "Air", Keywords: []string{"skydive", "paraglid", "balloon", "bungee", "zipline", "wingsuit", "helicopter"}},
		{Name: "Winter", Keywords: []string{"ski", "snowboard", "ice climb", "husky", "northern lights", "aurora", "glacier"}},
		{Name: "Wildlife", Keywords: []string{"safari", "whale", "gorilla", "shark", "wildlife", "birdwatch", "turtle"}},
	},
	domain.CategorySkills: {
		{Name: "Creative", Keywords: []string{"draw", "paint", "photograph", "write", "pottery", "calligraphy", "design", "sketch"}},
		{Name: "Physical", Keywords: []string{"dance", "swim", "martial", "yoga", "juggle", "skate", "handstand", "climb"}},
		{Name: "Intellectual", Keywords: []string{"language", "spanish", "french", "japanese", "chess", "math", "history", "read"}},
		{Name: "Practical", Keywords: []string{"cook", "drive", "repair", "garden", "sew", "woodwork", "first aid", "code", "program"}},
	},
	domain.CategoryCreative: {
		{Name: "Visual", Keywords: []string{"paint", "draw", "photo", "film", "sculpt", "illustrat", "pottery", "ceramic"}},
		{Name: "Music", Keywords: []string{"guitar", "piano", "sing", "song", "compose", "drum", "violin", "produce"}},
		{Name: "Writing", Keywords: []string{"write", "novel", "poem", "blog", "journal", "story", "screenplay"}},
		{Name: "Craft", Keywords: []string{"knit", "sew", "woodwork", "jewel", "leather", "candle", "origami"}},
	},
	domain.CategoryTravel: {
		{Name: "Cities", Keywords: []string{"city", "tokyo", "paris", "london", "new york", "rome", "barcelona", "museum"}},
		{Name: "Nature", Keywords: []string{"national park", "waterfall", "canyon", "fjord", "island", "beach", "desert", "rainforest"}},
		{Name: "Road Trips", Keywords: []string{"road trip", "drive", "route", "van", "camper", "highway"}},
		{Name: "Festivals", Keywords: []string{"festival", "carnival", "new year", "lantern", "oktoberfest"}},
	},
	domain.CategoryFoodDrink: {
		{Name: "Fine Dining", Keywords: []string{"michelin", "tasting menu", "fine dining", "omakase", "chef"}},
		{Name: "Street Food", Keywords: []string{"street food", "market", "food truck", "hawker", "stall"}},
		{Name: "Drinks", Keywords: []string{"wine", "whisky", "cocktail", "brewery", "coffee", "tea", "sake"}},
		{Name: "Baking", Keywords: []string{"bake", "bread", "pastry", "cake", "sourdough", "croissant"}},
	},
	domain.CategoryPersonalGrowth: {
		{Name: "Mindfulness", Keywords: []string{"meditat", "mindful", "retreat", "silence", "breathwork", "journal"}},
		{Name: "Learning", Keywords: []string{"course", "degree", "study", "certificate", "workshop", "mentor"}},
		{Name: "Habits", Keywords: []string{"habit", "routine", "morning", "digital detox", "streak"}},
	},
	domain.CategoryLifeLegacy: {
		{Name: "Family", Keywords: []string{"family", "parent", "child", "wedding", "anniversary", "reunion"}},
		{Name: "Home", Keywords: []string{"house", "home", "garden", "renovat", "move", "apartment"}},
		{Name: "Giving Back", Keywords: []string{"volunteer", "donate", "mentor", "charity", "foundation"}},
	},
	domain.CategoryBusinessProfessional: {
		{Name: "Career", Keywords: []string{"promotion", "job", "career", "interview", "salary", "lead"}},
		{Name: "Ventures", Keywords: []string{"business", "startup", "launch", "side project", "invest", "freelance"}},
		{Name: "Speaking", Keywords: []string{"talk", "conference", "present", "keynote", "podcast", "publish"}},
	},
	domain.CategoryMaterial: {
		{Name: "Vehicles", Keywords: []string{"car", "motorcycle", "bike", "boat", "camper", "van"}},
		{Name: "Tech", Keywords: []string{"camera", "laptop", "drone", "console", "synth", "telescope"}},
		{Name: "Home Goods", Keywords: []string{"furniture", "sofa", "kitchen", "espresso", "record player", "art"}},
	},
	domain.CategoryHealthWellness: {
		{Name: "Fitness", Keywords: []string{"marathon", "run", "gym", "strength", "triathlon", "5k", "10k", "cycle"}},
		{Name: "Recovery", Keywords: []string{"sleep", "spa", "sauna", "massage", "stretch", "physio"}},
		{Name: "Nutrition", Keywords: []string{"diet", "vegetarian", "meal prep", "sugar", "fasting", "nutrition"}},
	},
	domain.CategoryChallenges: {
		{Name: "Endurance", Keywords: []string{"marathon", "ultra", "ironman", "century", "swimrun", "everest"}},
		{Name: "Skills Tests", Keywords: []string{"exam", "black belt", "competition", "tournament", "record"}},
		{Name: "Dares", Keywords: []string{"cold plunge", "ice bath", "30 day", "no spend", "challenge"}},
	},
	domain.CategorySocialImpact: {
		{Name: "Community", Keywords: []string{"community", "neighborhood", "local", "shelter", "food bank"}},
		{Name: "Environment", Keywords: []string{"plant", "tree", "cleanup", "recycle", "climate", "beach clean"}},
		{Name: "Advocacy", Keywords: []string{"campaign", "petition", "fundrais", "awareness", "march"}},
	},
	domain.CategoryCulturalEvents: {
		{Name: "Performances", Keywords: []string{"opera", "ballet", "theater", "theatre", "symphony", "musical"}},
		{Name: "Exhibitions", Keywords: []string{"museum", "gallery", "exhibit", "biennale", "art fair"}},
		{Name: "Traditions", Keywords: []string{"ceremony", "festival", "ritual", "parade", "tea ceremony"}},
	},
	domain.CategorySportingEvents: {
		{Name: "World Stage", Keywords: []string{"olympics", "world cup", "grand slam", "super bowl", "champions league"}},
		{Name: "Motorsport", Keywords: []string{"formula", "f1", "motogp", "rally", "le mans"}},
		{Name: "Matches", Keywords: []string{"match", "game", "derby", "stadium", "court", "arena"}},
	},
	domain.CategoryMusicParty: {
		{Name: "Festivals", Keywords: []string{"festival", "glastonbury", "coachella", "tomorrowland", "primavera"}},
		{Name: "Concerts", Keywords: []string{"concert", "tour", "live", "arena", "gig"}},
		{Name: "Nightlife", Keywords: []string{"club", "rooftop", "nye", "new year", "party", "karaoke"}},
	},
}
