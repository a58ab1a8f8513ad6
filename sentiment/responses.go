package sentiment

import (
	"math/rand"

	"github.com/mindwell-app/mindwell/wellness"
)

var supportiveResponses = map[wellness.Emotion][]string{
	wellness.EmotionHappy: {
		"I'm so glad to hear you're feeling positive! It's wonderful to embrace these happy moments. Keep celebrating the good things in your life!",
		"That's fantastic! Your positive energy is truly uplifting. Remember to savor these joyful moments - they're what make life beautiful.",
		"How wonderful that you're experiencing happiness! These positive feelings are so important. Keep nurturing what brings you joy!",
	},
	wellness.EmotionSad: {
		"I hear you, and it's okay to feel sad. Remember that these feelings are temporary, and it's perfectly normal to have down days. Be gentle with yourself.",
		"I'm sorry you're going through a tough time. Your feelings are valid, and it's important to acknowledge them. Consider reaching out to someone you trust, or doing something small that usually brings you comfort.",
		"Sadness is a natural part of being human. Allow yourself to feel these emotions, but also remember that brighter days lie ahead. Take care of yourself, and don't hesitate to seek support if you need it.",
	},
	wellness.EmotionAngry: {
		"I can sense your frustration, and it's completely valid to feel angry sometimes. Try taking some deep breaths or stepping away for a moment. You deserve peace of mind.",
		"Anger is a natural emotion, and it's okay to feel this way. What matters is how we handle it. Consider channeling this energy into something constructive, or talking it through with someone you trust.",
		"I understand you're feeling upset right now. Remember to be kind to yourself as you process these feelings. It might help to take a break, practice some breathing exercises, or express yourself through writing or physical activity.",
	},
	wellness.EmotionAnxious: {
		"I can sense you're feeling anxious, and that's completely understandable. Try to ground yourself in the present moment - take slow, deep breaths. You're stronger than you think.",
		"Anxiety can feel overwhelming, but remember that you've gotten through difficult moments before. Focus on what you can control right now, and take things one step at a time. You've got this!",
		"I hear your worries, and they're valid. When anxiety feels too much, try the 5-4-3-2-1 grounding technique: name 5 things you see, 4 you can touch, 3 you hear, 2 you smell, and 1 you taste. You're not alone in this.",
	},
	wellness.EmotionNeutral: {
		"Thank you for sharing. Sometimes it's okay to just be in a neutral space. If there's anything specific on your mind, I'm here to listen.",
		"I appreciate you checking in. It's perfectly fine to have moments where emotions aren't extreme. How can I support you today?",
		"Thanks for opening up. Whether you're feeling calm or just in between emotions, remember that every feeling is temporary and valid. I'm here if you need to talk more.",
	},
}

// crisisFooter is appended when the sentiment is strongly negative.
const crisisFooter = "\n\nIf you're experiencing persistent difficult feelings, please consider reaching out to a mental health professional or trusted person in your life. You don't have to face this alone."

// SupportiveResponse picks a reply for the emotion, varying the wording
// per call. Strongly negative sentiment (score below -0.6) gets an
// extra note pointing at professional support.
func SupportiveResponse(emotion wellness.Emotion, score float64) string {
	pool, ok := supportiveResponses[emotion]
	if !ok {
		pool = supportiveResponses[wellness.EmotionNeutral]
	}
	response := pool[rand.Intn(len(pool))]

	if score < -0.6 {
		response += crisisFooter
	}
	return response
}
