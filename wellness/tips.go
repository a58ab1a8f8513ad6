package wellness

// Tip is one wellness suggestion surfaced alongside a detected emotion.
type Tip struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Tip categories.
const (
	TipActivities   = "activities"
	TipAffirmations = "affirmations"
	TipBreathing    = "breathing_exercises"
	TipResources    = "resources"
)

// TipsFor returns the wellness tips for an emotion. Unknown emotions
// fall back to the neutral set.
func TipsFor(emotion Emotion) []Tip {
	if tips, ok := wellnessTips[emotion]; ok {
		return tips
	}
	return wellnessTips[EmotionNeutral]
}

var wellnessTips = map[Emotion][]Tip{
	EmotionHappy: {
		{Title: "Share Your Joy", Description: "Share your positive feelings with someone you care about. Spreading joy multiplies happiness.", Category: TipActivities},
		{Title: "Practice Gratitude", Description: "Take a moment to write down what you're grateful for. This reinforces positive feelings.", Category: TipActivities},
		{Title: "Celebrate Small Wins", Description: "Acknowledge and celebrate your achievements, no matter how small they seem.", Category: TipAffirmations},
		{Title: "Deep Breathing", Description: "Take 5 deep breaths to ground yourself in this positive moment.", Category: TipBreathing},
		{Title: "Stay Present", Description: "Enjoy this moment of happiness. Mindfulness helps you fully experience positive emotions.", Category: TipActivities},
	},
	EmotionSad: {
		{Title: "4-7-8 Breathing", Description: "Inhale for 4 counts, hold for 7, exhale for 8. Repeat 4 times to calm your nervous system.", Category: TipBreathing},
		{Title: "Reach Out", Description: "Talk to someone you trust about how you're feeling. You don't have to face this alone.", Category: TipResources},
		{Title: "Gentle Movement", Description: "Take a short walk, stretch, or do light yoga. Movement can help lift your mood.", Category: TipActivities},
		{Title: "Self-Compassion", Description: "Be kind to yourself. It's okay to feel sad. Your feelings are valid and temporary.", Category: TipAffirmations},
		{Title: "Professional Support", Description: "If sadness persists, consider speaking with a mental health professional. Help is available.", Category: TipResources},
		{Title: "Create Something", Description: "Express yourself through writing, drawing, music, or any creative outlet.", Category: TipActivities},
	},
	EmotionAngry: {
		{Title: "Box Breathing", Description: "Inhale for 4 counts, hold for 4, exhale for 4, hold for 4. Repeat 4-6 times.", Category: TipBreathing},
		{Title: "Take a Break", Description: "Step away from the situation. Give yourself space to cool down before responding.", Category: TipActivities},
		{Title: "Physical Release", Description: "Channel anger through exercise, punching a pillow, or vigorous activity.", Category: TipActivities},
		{Title: "Identify Triggers", Description: "Reflect on what triggered your anger. Understanding helps manage future responses.", Category: TipActivities},
		{Title: "Express Constructively", Description: "Write down your feelings or talk it through with someone. Expressing helps process anger.", Category: TipActivities},
		{Title: "Cool Down Technique", Description: "Splash cold water on your face or hold something cold. This can help reset your system.", Category: TipActivities},
	},
	EmotionAnxious: {
		{Title: "4-7-8 Breathing", Description: "Inhale for 4 counts, hold for 7, exhale for 8. This activates your relaxation response.", Category: TipBreathing},
		{Title: "Grounding Technique", Description: "Name 5 things you see, 4 you can touch, 3 you hear, 2 you smell, 1 you taste.", Category: TipActivities},
		{Title: "Progressive Muscle Relaxation", Description: "Tense and release each muscle group from toes to head. This reduces physical tension.", Category: TipActivities},
		{Title: "Challenge Anxious Thoughts", Description: "Ask yourself: \"Is this thought helpful? What's the evidence? What's a more balanced view?\"", Category: TipActivities},
		{Title: "Limit Stimulants", Description: "Reduce caffeine and sugar intake, especially when feeling anxious.", Category: TipResources},
		{Title: "Create a Calm Space", Description: "Find a quiet place, dim lights, play calming music, or use aromatherapy.", Category: TipActivities},
	},
	EmotionNeutral: {
		{Title: "Mindful Breathing", Description: "Take 10 slow, deep breaths. Focus on the sensation of breathing.", Category: TipBreathing},
		{Title: "Check In With Yourself", Description: "Take a moment to notice how you're feeling physically and emotionally.", Category: TipActivities},
		{Title: "Gentle Movement", Description: "Do some light stretching or take a short walk to energize your body.", Category: TipActivities},
		{Title: "Set an Intention", Description: "Think about what you'd like to focus on today. Setting intentions brings clarity.", Category: TipActivities},
		{Title: "Stay Hydrated", Description: "Drink a glass of water. Proper hydration supports both physical and mental wellbeing.", Category: TipResources},
	},
}
