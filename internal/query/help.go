package query

const fallbackMessage = "I can help you with questions about customers, orders, products, and sales data."

var availableQueries = []string{
	"Show all customers",
	"How many orders are there?",
	"What is the total revenue?",
	"Show top products",
	"Customer summary",
	"Order status distribution",
	"Show me business insights",
}

const helpMessage = "I can help you analyze your business data! Here are some things you can ask me:"

var suggestions = []string{
	"Show me all customers",
	"What is the total revenue?",
	"Who are the top customers by spending?",
	"What are the most popular products?",
	"Show me order status distribution",
	"What is the average order value?",
	"Show me monthly revenue trends",
	"How many orders are pending?",
	"Give me business insights",
	"Show me today's sales",
	"Give me advanced analytics",
	"Show me customer segmentation",
	"Analyze product performance",
}

func fallbackHelp() Result {
	return Help{Message: fallbackMessage, AvailableQueries: append([]string(nil), availableQueries...)}
}

func explicitHelp(*Dispatcher, string) Result {
	return Help{Message: helpMessage, Suggestions: append([]string(nil), suggestions...)}
}
