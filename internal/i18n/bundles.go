package i18n

import "fmt"

// Bundle holds every user-facing message for one language. Methods interpolate
// the dynamic parts so callers never touch format strings directly.
type Bundle struct {
	welcome          string // name, channel link
	joinButton       string
	chooseLanguage   string
	languageSet      string
	mainMenu         string
	chatButton       string
	chatIntro        string
	thinking         string
	quotaExceeded    string // used/limit
	generationFailed string
	accountInfo      string // name, plan, usage, points, admin contact
	accountMissing   string
	referralInfo     string // link, code, award
	referralApplied  string // code, award
	unlimited        string
}

func (b *Bundle) Welcome(name, channelLink string) string {
	return fmt.Sprintf(b.welcome, name, channelLink)
}

func (b *Bundle) JoinButton() string     { return b.joinButton }
func (b *Bundle) ChooseLanguage() string { return b.chooseLanguage }
func (b *Bundle) LanguageSet() string    { return b.languageSet }
func (b *Bundle) MainMenu() string       { return b.mainMenu }
func (b *Bundle) ChatButton() string     { return b.chatButton }
func (b *Bundle) ChatIntro() string      { return b.chatIntro }
func (b *Bundle) Thinking() string       { return b.thinking }

func (b *Bundle) QuotaExceeded(used, limit int64) string {
	return fmt.Sprintf(b.quotaExceeded, used, limit)
}

func (b *Bundle) GenerationFailed() string { return b.generationFailed }

// Usage renders the "used/limit" pair shown in account info. Premium plans
// have no cap, so the limit slot shows the localized unlimited word.
func (b *Bundle) Usage(used, limit int64, isUnlimited bool) string {
	if isUnlimited {
		return fmt.Sprintf("%d/%s", used, b.unlimited)
	}
	return fmt.Sprintf("%d/%d", used, limit)
}

func (b *Bundle) AccountInfo(name, plan, usage string, points int64, adminContact string) string {
	return fmt.Sprintf(b.accountInfo, name, plan, usage, points, adminContact)
}

func (b *Bundle) AccountMissing() string { return b.accountMissing }

func (b *Bundle) ReferralInfo(link, code string, award int64) string {
	return fmt.Sprintf(b.referralInfo, link, code, award)
}

func (b *Bundle) ReferralApplied(code string, award int64) string {
	return fmt.Sprintf(b.referralApplied, code, award)
}

var bundles = map[Language]*Bundle{
	LangEnglish: {
		welcome: "🌟 **Welcome to PixiGPT, %s!** 🌟\n\n" +
			"I'm your personal AI assistant, ready to chat and help you with anything you need.\n\n" +
			"To unlock my full potential and start exploring, please join our official Telegram channel:\n" +
			"👉 %s\n\n" +
			"Once you've joined, just type anything, and we'll get started! Let's create something amazing together. ✨",
		joinButton:     "Join Channel",
		chooseLanguage: "Please choose your language:",
		languageSet:    "Language set to English. Now, let's explore PixiGPT!",
		mainMenu:       "What would you like to do?",
		chatButton:     "💬 Chat with AI",
		chatIntro:      "You can now chat with PixiGPT. Type your message:",
		thinking:       "Thinking...",
		quotaExceeded: "You have reached your daily message limit (%d/%d). " +
			"Upgrade to premium for unlimited messages, or wait until tomorrow!",
		generationFailed: "Sorry, I couldn't process your request right now. Please try again later.",
		accountInfo: "**Account Information:**\n" +
			"Telegram Name: `%s`\n" +
			"Current Plan: `%s`\n" +
			"Messages Used Today: `%s`\n" +
			"Referral Points: `%d`\n\n" +
			"To upgrade to premium for unlimited messages, contact admin: %s",
		accountMissing: "Your account information was not found. Start with /start.",
		referralInfo: "**Your Referral System:**\n" +
			"Share this link with your friends to earn points!\n" +
			"Your Referral Link: `%s`\n" +
			"Your Referral Code: `%s`\n\n" +
			"You get %d points for each successful referral.",
		referralApplied: "You have successfully been referred by `%s`! Your referrer has been awarded %d points.",
		unlimited:       "unlimited",
	},
	LangBengali: {
		welcome: "🌟 **PixiGPT-তে আপনাকে স্বাগতম, %s!** 🌟\n\n" +
			"আমি আপনার ব্যক্তিগত এআই সহকারী, আপনার প্রয়োজন অনুযায়ী চ্যাট করতে এবং সাহায্য করতে প্রস্তুত।\n\n" +
			"আমার সম্পূর্ণ ক্ষমতা আনলক করতে এবং এক্সপ্লোর করা শুরু করতে, অনুগ্রহ করে আমাদের অফিসিয়াল টেলিগ্রাম চ্যানেলে যোগ দিন:\n" +
			"👉 %s\n\n" +
			"একবার যোগদানের পর, যেকোনো কিছু টাইপ করুন, এবং আমরা শুরু করব! চলুন একসাথে অসাধারণ কিছু তৈরি করি। ✨",
		joinButton:     "Join Channel",
		chooseLanguage: "আপনার ভাষা নির্বাচন করুন:",
		languageSet:    "ভাষা বাংলাতে সেট করা হয়েছে। এবার চলুন PixiGPT এক্সপ্লোর করি!",
		mainMenu:       "আপনি কি করতে চান?",
		chatButton:     "💬 Chat with AI",
		chatIntro:      "এখন আপনি PixiGPT-এর সাথে চ্যাট করতে পারবেন। আপনার মেসেজ টাইপ করুন:",
		thinking:       "ভাবছি...",
		quotaExceeded: "আপনার দৈনিক মেসেজ সীমা পৌঁছে গেছে (%d/%d)। " +
			"আনলিমিটেড মেসেজের জন্য প্রিমিয়ামে আপগ্রেড করুন, অথবা আগামীকালের জন্য অপেক্ষা করুন!",
		generationFailed: "দুঃখিত, আমি এই মুহূর্তে আপনার অনুরোধ প্রক্রিয়া করতে পারিনি। অনুগ্রহ করে পরে আবার চেষ্টা করুন।",
		accountInfo: "**অ্যাকাউন্ট তথ্য:**\n" +
			"টেলিগ্রাম নাম: `%s`\n" +
			"বর্তমান প্ল্যান: `%s`\n" +
			"আজকের ব্যবহৃত মেসেজ: `%s`\n" +
			"রেফারেল পয়েন্ট: `%d`\n\n" +
			"আনলিমিটেড মেসেজের জন্য প্রিমিয়ামে আপগ্রেড করতে, অ্যাডমিনের সাথে যোগাযোগ করুন: %s",
		accountMissing: "আপনার অ্যাকাউন্ট তথ্য পাওয়া যায়নি। /start দিয়ে শুরু করুন।",
		referralInfo: "**আপনার রেফারেল সিস্টেম:**\n" +
			"পয়েন্ট অর্জনের জন্য আপনার বন্ধুদের সাথে এই লিঙ্কটি শেয়ার করুন!\n" +
			"আপনার রেফারেল লিঙ্ক: `%s`\n" +
			"আপনার রেফারেল কোড: `%s`\n\n" +
			"প্রতিটি সফল রেফারে আপনি %d পয়েন্ট পাবেন।",
		referralApplied: "আপনি সফলভাবে `%s` দ্বারা রেফার হয়েছেন! এবং আপনার রেফারারকে %d পয়েন্ট দেওয়া হয়েছে।",
		unlimited:       "আনলিমিটেড",
	},
	LangSpanish: {
		welcome: "🌟 **¡Bienvenido a PixiGPT, %s!** 🌟\n\n" +
			"Soy tu asistente personal de IA, lista para chatear y ayudarte con todo lo que necesites.\n\n" +
			"Para desbloquear todo mi potencial y empezar a explorar, por favor únete a nuestro canal oficial de Telegram:\n" +
			"👉 %s\n\n" +
			"Una vez que te hayas unido, ¡simplemente escribe algo y empezaremos! Creemos algo increíble juntos. ✨",
		joinButton:     "Join Channel",
		chooseLanguage: "Por favor, elige tu idioma:",
		languageSet:    "Idioma configurado a Español. ¡Ahora, exploremos PixiGPT!",
		mainMenu:       "¿Qué te gustaría hacer?",
		chatButton:     "💬 Chat with AI",
		chatIntro:      "Ahora puedes chatear con PixiGPT. Escribe tu mensaje:",
		thinking:       "Pensando...",
		quotaExceeded: "Has alcanzado tu límite diario de mensajes (%d/%d). " +
			"¡Actualiza a premium para mensajes ilimitados, o espera hasta mañana!",
		generationFailed: "Lo siento, no pude procesar tu solicitud en este momento. Por favor, inténtalo de nuevo más tarde.",
		accountInfo: "**Información de la cuenta:**\n" +
			"Nombre de Telegram: `%s`\n" +
			"Plan actual: `%s`\n" +
			"Mensajes usados hoy: `%s`\n" +
			"Puntos de referencia: `%d`\n\n" +
			"Para actualizar a premium para mensajes ilimitados, contacta al administrador: %s",
		accountMissing: "No se encontró la información de tu cuenta. Empieza con /start.",
		referralInfo: "**Tu sistema de referidos:**\n" +
			"¡Comparte este enlace con tus amigos para ganar puntos!\n" +
			"Tu enlace de referido: `%s`\n" +
			"Tu código de referido: `%s`\n\n" +
			"Obtienes %d puntos por cada referido exitoso.",
		referralApplied: "¡Has sido referido exitosamente por `%s`! Tu referente ha recibido %d puntos.",
		unlimited:       "ilimitado",
	},
	LangIndonesian: {
		welcome: "🌟 **Selamat datang di PixiGPT, %s!** 🌟\n\n" +
			"Saya asisten AI pribadi Anda, siap untuk mengobrol dan membantu Anda dengan apa pun yang Anda butuhkan.\n\n" +
			"Untuk membuka potensi penuh saya dan mulai menjelajah, silakan bergabung dengan saluran Telegram resmi kami:\n" +
			"👉 %s\n\n" +
			"Setelah Anda bergabung, cukup ketik apa saja, dan kita akan mulai! Mari ciptakan sesuatu yang luar biasa bersama. ✨",
		joinButton:     "Join Channel",
		chooseLanguage: "Silakan pilih bahasa Anda:",
		languageSet:    "Bahasa diatur ke Bahasa Indonesia. Sekarang, mari jelajahi PixiGPT!",
		mainMenu:       "Apa yang ingin Anda lakukan?",
		chatButton:     "💬 Chat with AI",
		chatIntro:      "Anda sekarang dapat mengobrol dengan PixiGPT. Ketik pesan Anda:",
		thinking:       "Sedang berpikir...",
		quotaExceeded: "Anda telah mencapai batas pesan harian Anda (%d/%d). " +
			"Tingkatkan ke premium untuk pesan tanpa batas, atau tunggu sampai besok!",
		generationFailed: "Maaf, saya tidak dapat memproses permintaan Anda saat ini. Silakan coba lagi nanti.",
		accountInfo: "**Informasi Akun:**\n" +
			"Nama Telegram: `%s`\n" +
			"Paket Saat Ini: `%s`\n" +
			"Pesan yang Digunakan Hari Ini: `%s`\n" +
			"Poin Referral: `%d`\n\n" +
			"Untuk meningkatkan ke premium untuk pesan tak terbatas, hubungi admin: %s",
		accountMissing: "Informasi akun Anda tidak ditemukan. Mulai dengan /start.",
		referralInfo: "**Sistem Referral Anda:**\n" +
			"Bagikan tautan ini dengan teman Anda untuk mendapatkan poin!\n" +
			"Tautan Referral Anda: `%s`\n" +
			"Kode Referral Anda: `%s`\n\n" +
			"Anda mendapatkan %d poin untuk setiap referral yang berhasil.",
		referralApplied: "Anda berhasil direferensikan oleh `%s`! Referrer Anda telah diberikan %d poin.",
		unlimited:       "tak terbatas",
	},
}
