package rank

import "math/rand"

// Quote 表示仪表盘展示的一条激励语录。
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// Quotes 为固定的语录池。
var Quotes = []Quote{
	{Text: "It's not about how many times you can hit, it's about how many times you can get hit and keep moving forward.", Author: "Rocky Balboa"},
	{Text: "Success is not final, failure is not fatal: it is the courage to continue that counts.", Author: "Winston Churchill"},
	{Text: "The only person you are destined to become is the person you decide to be.", Author: "Ralph Waldo Emerson"},
	{Text: "Discipline is choosing between what you want now and what you want most.", Author: "Abraham Lincoln"},
	{Text: "You are not your feelings. You are the observer of your feelings.", Author: "Naval Ravikant"},
	{Text: "Suffer the pain of discipline or suffer the pain of regret.", Author: "Jim Rohn"},
	{Text: "The race is long and in the end, it's only with yourself.", Author: "Baz Luhrmann"},
	{Text: "Every champion was once a contender who refused to give up.", Author: "Rocky Balboa"},
	{Text: "Your life does not get better by chance, it gets better by change.", Author: "Jim Rohn"},
	{Text: "The difference between who you are and who you want to be is what you do.", Author: "Unknown"},
	{Text: "Motivation is what gets you started. Habit is what keeps you going.", Author: "Jim Ryun"},
	{Text: "You don't have to be great to start, but you have to start to be great.", Author: "Zig Ziglar"},
	{Text: "Stop being a prisoner of your past. Become the architect of your future.", Author: "Robin Sharma"},
	{Text: "Either you run the day, or the day runs you.", Author: "Jim Rohn"},
	{Text: "Be so good they can't ignore you.", Author: "Steve Martin"},
	{Text: "We suffer more often in imagination than in reality.", Author: "Seneca"},
	{Text: "No man is free who is not master of himself.", Author: "Epictetus"},
	{Text: "Waste no more time arguing about what a good man should be. Be one.", Author: "Marcus Aurelius"},
	{Text: "The best revenge is not to be like your enemy.", Author: "Marcus Aurelius"},
	{Text: "Dignity grows with the ability to say no to oneself.", Author: "Ajahn Brahm"},
	{Text: "He who has a why to live can bear almost any how.", Author: "Friedrich Nietzsche"},
	{Text: "I don't stop when I'm tired. I stop when I'm done.", Author: "David Goggins"},
	{Text: "The only easy day was yesterday.", Author: "Navy SEALs"},
	{Text: "Your level of success will rarely exceed your level of personal development.", Author: "Jim Rohn"},
	{Text: "Do what you can, with what you have, where you are.", Author: "Theodore Roosevelt"},
	{Text: "Action is the foundational key to all success.", Author: "Pablo Picasso"},
	{Text: "If you want to fly, you have to give up the things that weigh you down.", Author: "Toni Morrison"},
	{Text: "Don't count the days, make the days count.", Author: "Muhammad Ali"},
	{Text: "I hated every minute of training, but I said, 'Don't quit. Suffer now and live the rest of your life as a champion.'", Author: "Muhammad Ali"},
	{Text: "Focus is about saying no.", Author: "Steve Jobs"},
	{Text: "Whether you think you can or you think you can't, you're right.", Author: "Henry Ford"},
	{Text: "The mind is everything. What you think you become.", Author: "Buddha"},
	{Text: "Change your thoughts and you change your world.", Author: "Norman Vincent Peale"},
	{Text: "Your time is limited, so don't waste it living someone else's life.", Author: "Steve Jobs"},
	{Text: "Creativity is intelligence having fun.", Author: "Albert Einstein"},
	{Text: "Knowing is not enough; we must apply. Willing is not enough; we must do.", Author: "Bruce Lee"},
	{Text: "Don't watch the clock; do what it does. Keep going.", Author: "Sam Levenson"},
	{Text: "Believe you can and you're halfway there.", Author: "Theodore Roosevelt"},
	{Text: "Everything you've ever wanted is on the other side of fear.", Author: "George Addair"},
	{Text: "Success is stumbling from failure to failure with no loss of enthusiasm.", Author: "Winston Churchill"},
	{Text: "The temptation to quit will be greatest just before you are about to succeed.", Author: "Chinese Proverb"},
	{Text: "A river cuts through rock not because of its power but because of its persistence.", Author: "Jim Watkins"},
	{Text: "The standard you walk past is the standard you accept.", Author: "David Morrison"},
	{Text: "At the end of the day, we can endure much more than we think we can.", Author: "Frida Kahlo"},
	{Text: "Turn your wounds into wisdom.", Author: "Oprah Winfrey"},
	{Text: "Pain is temporary. Quitting lasts forever.", Author: "Lance Armstrong"},
	{Text: "Don't wish it were easier. Wish you were better.", Author: "Jim Rohn"},
	{Text: "Small daily improvements over time lead to stunning results.", Author: "Robin Sharma"},
	{Text: "Masters of their own fate are not those who control the world, but those who control themselves.", Author: "Unknown"},
	{Text: "The secret of getting ahead is getting started.", Author: "Mark Twain"},
	{Text: "Don't wait. The time will never be just right.", Author: "Napoleon Hill"},
	{Text: "Great things are not done by impulse, but by a series of small things brought together.", Author: "Vincent Van Gogh"},
	{Text: "Show up, do the work, and go home.", Author: "Austin Kleon"},
	{Text: "Amateurs sit and wait for inspiration, the rest of us just get up and go to work.", Author: "Stephen King"},
}

// RandomQuote 从语录池中随机取一条。
func RandomQuote() Quote {
	return Quotes[rand.Intn(len(Quotes))]
}
