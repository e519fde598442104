package usecases

import (
	"fmt"

	"chatwidget/internal/entities"
)

// TemplateLibrary holds the static canned-reply matrix indexed by
// business category and intent. Pure data lookup; all matching happens
// before this point.
type TemplateLibrary struct {
	templates map[entities.BusinessCategory]map[Intent]string
}

// NewTemplateLibrary builds the library and validates it. A category
// missing any intent entry, in particular its unknown entry, is a
// configuration error and the caller must refuse to serve.
func NewTemplateLibrary() (*TemplateLibrary, error) {
	lib := &TemplateLibrary{templates: templateMatrix}
	if err := validateTemplates(lib.templates); err != nil {
		return nil, err
	}
	return lib, nil
}

func validateTemplates(templates map[entities.BusinessCategory]map[Intent]string) error {
	for _, cat := range entities.Categories() {
		byIntent, ok := templates[cat]
		if !ok {
			return fmt.Errorf("template matrix: category %q has no entries", cat)
		}
		for _, intent := range Intents() {
			if byIntent[intent] == "" {
				return fmt.Errorf("template matrix: category %q missing %q entry", cat, intent)
			}
		}
	}
	return nil
}

// Lookup returns the canned reply for a category and intent. Unknown
// categories fall back to "other"; a missing intent falls back to the
// category's unknown entry. Always non-empty once validation has passed.
func (l *TemplateLibrary) Lookup(category entities.BusinessCategory, intent Intent) string {
	byIntent, ok := l.templates[category]
	if !ok {
		byIntent = l.templates[entities.CategoryOther]
	}
	if reply, ok := byIntent[intent]; ok {
		return reply
	}
	return byIntent[IntentUnknown]
}

var templateMatrix = map[entities.BusinessCategory]map[Intent]string{
	entities.CategoryRestaurant: {
		IntentGreeting: "Hello! Welcome to our restaurant. How can I assist you today? Would you like to see our menu or make a reservation?",
		IntentGoodbye:  "Thank you for chatting with us! We hope to serve you delicious food soon. Have a great day!",
		IntentHours:    "Our restaurant is open Monday to Friday from 11 AM to 10 PM, and weekends from 10 AM to 11 PM.",
		IntentLocation: "We're located at 123 Main Street. You can find directions on our Contact page.",
		IntentProducts: "Our menu features a variety of dishes including appetizers, main courses, desserts, and beverages. Would you like me to recommend something?",
		IntentPrice:    "Our menu prices range from $10 for appetizers to $30 for specialty entrees. We also offer lunch specials from $15.",
		IntentBooking:  "I'd be happy to help you make a reservation. Please provide your preferred date, time, and party size, or visit our website for online reservations.",
		IntentContact:  "You can reach us at (555) 123-4567 or email us at info@restaurant.com.",
		IntentHelp:     "I can help with menu questions, reservations, hours, location, or special events. What would you like to know?",
		IntentThanks:   "You're welcome! It's our pleasure to assist you.",
		IntentUnknown:  "I'm not sure I understand. Would you like to know about our menu, make a reservation, or check our hours?",
	},
	entities.CategoryEcommerce: {
		IntentGreeting: "Welcome to our online store! How can I help you today? Looking for a specific product?",
		IntentGoodbye:  "Thank you for shopping with us! If you need anything else, don't hesitate to reach out.",
		IntentHours:    "Our online store is available 24/7. Customer service is available Monday to Friday from 9 AM to 6 PM.",
		IntentLocation: "We're an online store, but our headquarters is located at 456 Commerce Ave. We ship worldwide!",
		IntentProducts: "We offer a wide range of products including electronics, clothing, home goods, and more. What are you shopping for today?",
		IntentPrice:    "Our products vary in price depending on the category. We offer free shipping on orders over $50.",
		IntentBooking:  "We don't take bookings, but you can place an order through our website anytime.",
		IntentContact:  "Our customer service team is available at support@ecommerce.com or call us at (555) 987-6543.",
		IntentHelp:     "I can help you find products, check order status, understand our shipping policies, or connect you with customer service. What do you need?",
		IntentThanks:   "You're welcome! Happy shopping!",
		IntentUnknown:  "I'm not sure what you're looking for. Can I help you find a product or answer questions about shipping or returns?",
	},
	entities.CategoryService: {
		IntentGreeting: "Hello! Welcome to our service. How can I assist you today?",
		IntentGoodbye:  "Thank you for reaching out! If you need our services in the future, we're just a message away.",
		IntentHours:    "Our service hours are Monday to Friday, 8 AM to 7 PM. Weekend appointments are available upon request.",
		IntentLocation: "We're located at 789 Service Road. We also offer on-site services depending on your location.",
		IntentProducts: "We offer various services including consultation, installation, maintenance, and training. Which service are you interested in?",
		IntentPrice:    "Our service rates start at $75 per hour. We also offer package deals for ongoing services.",
		IntentBooking:  "I can help you schedule an appointment. Please provide your preferred date and time, and I'll check our availability.",
		IntentContact:  "You can contact our service team at info@service.com or call (555) 765-4321.",
		IntentHelp:     "I can assist with scheduling, service information, pricing, or general inquiries. What would you like to know?",
		IntentThanks:   "You're welcome! We're here to help whenever you need our services.",
		IntentUnknown:  "I'm not sure I understand your needs. Would you like information about our services or to schedule an appointment?",
	},
	entities.CategoryHealthcare: {
		IntentGreeting: "Welcome to our healthcare service. How can I assist you with your health needs today?",
		IntentGoodbye:  "Take care and stay healthy! Don't hesitate to reach out if you have more health questions.",
		IntentHours:    "Our clinic is open Monday to Friday from 8 AM to 8 PM, and Saturday from 9 AM to 5 PM.",
		IntentLocation: "Our healthcare facility is located at 321 Health Avenue. We have wheelchair access and reserved parking.",
		IntentProducts: "We offer various healthcare services including general consultations, specialized care, preventive medicine, and diagnostics.",
		IntentPrice:    "Consultation fees start at $100. Many insurance plans are accepted. Please contact us for specific pricing.",
		IntentBooking:  "I can help you schedule an appointment with one of our healthcare providers. What type of care are you seeking?",
		IntentContact:  "For medical questions or appointments, please call (555) 432-1098 or email health@healthcare.com.",
		IntentHelp:     "I can provide information about our services, help schedule appointments, or answer general health questions. How can I assist you?",
		IntentThanks:   "You're welcome! Your health is our priority.",
		IntentUnknown:  "I'm not sure I understand your health concern. Would you like to schedule an appointment or learn about our services?",
	},
	entities.CategoryEducation: {
		IntentGreeting: "Welcome to our educational platform! How can I help you with your learning journey today?",
		IntentGoodbye:  "Thank you for chatting with us! Happy learning and feel free to return if you have more questions.",
		IntentHours:    "Our administrative offices are open Monday to Friday from 9 AM to 5 PM. Online resources are available 24/7.",
		IntentLocation: "Our campus is located at 654 Learning Lane. Virtual learning options are also available.",
		IntentProducts: "We offer various courses and programs including certificate programs, degree courses, and professional development.",
		IntentPrice:    "Course fees vary by program. We offer financial aid and payment plans. Contact us for specific course pricing.",
		IntentBooking:  "Would you like to schedule a tour, an advisor meeting, or register for a course? I can help you with that.",
		IntentContact:  "For enrollment questions, contact admissions@education.com or call (555) 321-0987.",
		IntentHelp:     "I can provide information about courses, enrollment processes, schedules, or connect you with an academic advisor. What do you need?",
		IntentThanks:   "You're welcome! We're here to support your educational goals.",
		IntentUnknown:  "I'm not sure I understand your question. Would you like information about our programs or enrollment assistance?",
	},
	entities.CategoryFinance: {
		IntentGreeting: "Welcome to our financial services. How can I assist you with your financial needs today?",
		IntentGoodbye:  "Thank you for discussing your financial matters with us. We're here to help whenever you need financial guidance.",
		IntentHours:    "Our financial advisors are available Monday to Friday from 9 AM to 6 PM. Online banking is available 24/7.",
		IntentLocation: "Our main branch is located at 987 Finance Street. We also have digital services available online.",
		IntentProducts: "We offer various financial services including personal banking, investments, loans, insurance, and retirement planning.",
		IntentPrice:    "Our service fees vary based on the account type and services used. Please contact us for specific fee information.",
		IntentBooking:  "Would you like to schedule a consultation with a financial advisor? I can check their availability for you.",
		IntentContact:  "For financial inquiries, please contact support@finance.com or call (555) 210-9876.",
		IntentHelp:     "I can provide information about our financial products, services, or help you connect with a financial advisor. What can I assist with?",
		IntentThanks:   "You're welcome! We're dedicated to helping you achieve your financial goals.",
		IntentUnknown:  "I'm not sure I understand your financial question. Would you like information about our services or to speak with an advisor?",
	},
	entities.CategoryOther: {
		IntentGreeting: "Hello! Welcome to our business. How can I assist you today?",
		IntentGoodbye:  "Thank you for chatting with us! Have a wonderful day!",
		IntentHours:    "Our business hours are Monday to Friday from 9 AM to 6 PM.",
		IntentLocation: "We're located at 123 Business Avenue. Feel free to visit us!",
		IntentProducts: "We offer a variety of products and services. Could you specify what you're looking for?",
		IntentPrice:    "Our prices vary based on specific products and services. Please let me know what you're interested in for pricing details.",
		IntentBooking:  "I'd be happy to help you make a booking. What date and time works best for you?",
		IntentContact:  "You can reach us at info@business.com or call (555) 123-4567.",
		IntentHelp:     "I'm here to help! Please let me know what you need assistance with.",
		IntentThanks:   "You're welcome! It's our pleasure to assist you.",
		IntentUnknown:  "I'm not sure I understand. Could you please rephrase your question or let me know how I can help you?",
	},
}
