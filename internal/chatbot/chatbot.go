// Package chatbot is a pattern-matching chit-chat responder for interview
// preparation questions. It is a stateless classifier: the reply depends only
// on the input text and the caller-supplied turn counter, which drives a
// deterministic rotation through each topic's canned responses.
package chatbot

import (
	"strings"
)

// Topic labels, exported for metrics.
const (
	TopicGreeting   = "greeting"
	TopicTips       = "interview_tips"
	TopicTechnical  = "technical_interview"
	TopicSalary     = "salary_negotiation"
	TopicBehavioral = "behavioral_questions"
	TopicFallback   = "fallback"
)

type topicRule struct {
	topic    string
	triggers []string
}

// Rules are evaluated in order; the first trigger word contained in the
// input wins.
var rules = []topicRule{
	{TopicGreeting, []string{"hello", "hi", "hey", "greetings"}},
	{TopicTips, []string{"tip", "advice", "suggest", "how to"}},
	{TopicTechnical, []string{"technical", "code", "programming", "algorithm"}},
	{TopicSalary, []string{"salary", "pay", "compensation", "money"}},
	{TopicBehavioral, []string{"behavioral", "experience", "story", "situation"}},
}

// Responder holds the canned response catalog. The display name is folded
// into greeting responses.
type Responder struct {
	name      string
	responses map[string][]string
}

// New builds a Responder with the given display name.
func New(name string) *Responder {
	return &Responder{
		name: name,
		responses: map[string][]string{
			TopicGreeting: {
				"Hello! I'm " + name + ". How can I assist you?",
				"Hi there! I'm " + name + ". What would you like to know?",
				"Welcome! I'm " + name + ". What questions do you have?",
			},
			TopicTips: {
				"Research the company thoroughly before the interview and understand their values and mission.",
				"Practice common interview questions but also prepare stories that demonstrate your skills.",
				"Ask thoughtful questions at the end of the interview; it shows genuine interest.",
				"Use the STAR method (Situation, Task, Action, Result) for behavioral questions.",
			},
			TopicTechnical: {
				"For technical interviews, practice coding problems regularly and time yourself.",
				"Explain your thought process out loud; interviewers want to see how you think.",
				"Review fundamental data structures and algorithms before technical interviews.",
				"Prepare to discuss your technical projects in detail, including challenges you faced.",
			},
			TopicSalary: {
				"Research market rates for the position and location before discussing salary.",
				"Consider the total compensation package, not just base salary.",
				"Be confident but reasonable, and be ready to justify your requested range.",
			},
			TopicBehavioral: {
				"Prepare 3-5 stories from your experience that demonstrate key competencies.",
				"Be specific about your role and contributions in each situation.",
				"Focus on positive outcomes and what you learned from each experience.",
			},
			TopicFallback: {
				"I'm not sure I understand. Could you rephrase that?",
				"That's an interesting question. Could you provide more context?",
				"I'm here to help. Ask me about interview tips, technical questions, or behavioral interviews.",
			},
		},
	}
}

// Classify returns the topic for an input.
func Classify(input string) string {
	lower := strings.ToLower(strings.TrimSpace(input))
	for _, rule := range rules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lower, trigger) {
				return rule.topic
			}
		}
	}
	return TopicFallback
}

// Reply returns the canned response for the input's topic. The turn counter
// rotates through the topic's responses so repeated questions get varied but
// reproducible answers.
func (r *Responder) Reply(input string, turn int) (string, string) {
	topic := Classify(input)
	pool := r.responses[topic]
	if turn < 0 {
		turn = 0
	}
	return pool[turn%len(pool)], topic
}
