package regions

var table = [regionEnd]Content{
	Delhi: {
		LocaleTag: "hi-IN",
		Strings: Strings{
			StateName:   "दिल्ली",
			Welcome:     "लक्ष्मी पथ में आपका स्वागत है। मैं आपकी वित्तीय सहायिका हूँ।",
			FillDetails: "कृपया अपनी जानकारी भरें ताकि हम आपको सही सलाह दे सकें।",

			Name:     "नाम",
			Age:      "उम्र",
			Category: "श्रेणी",
			CategoryOptions: CategoryOptions{
				Select:  "श्रेणी चुनें",
				General: "सामान्य",
				OBC:     "अन्य पिछड़ा वर्ग",
				SC:      "अनुसूचित जाति",
				ST:      "अनुसूचित जनजाति",
			},
			IsTribal:       "क्या आप आदिवासी समुदाय से हैं?",
			MonthlyIncome:  "मासिक आय (रुपये में)",
			HasBankAccount: "क्या आपका बैंक खाता है?",
			BankName:       "बैंक का नाम",
			Submit:         "जमा करें",

			Advice:        "हर महीने अपनी आय का एक छोटा हिस्सा बचाएँ। प्रधान मंत्री जन धन योजना के तहत बिना शुल्क का बैंक खाता खोलें और सुकन्या समृद्धि योजना जैसी सरकारी योजनाओं का लाभ उठाएँ।",
			ChatbotPrompt: "अगर आपके कोई सवाल हैं, तो नीचे दिए गए चैट बटन से मुझसे पूछें।",

			ChatbotButton:           "सहायता चैट",
			ChatbotTitle:            "लक्ष्मी सहायिका",
			ChatbotWelcome:          "नमस्ते! मैं आपकी कैसे मदद कर सकती हूँ?",
			ChatbotInputPlaceholder: "अपना सवाल लिखें...",
			ChatbotSendButton:       "भेजें",
			ChatbotDefaultResponse:  "माफ़ कीजिए, मैं यह नहीं समझ पाई। कृपया किसी सरकारी योजना के बारे में पूछें।",
			SchemeInfo:              "प्रधान मंत्री जन धन योजना एक वित्तीय समावेशन योजना है। इसमें शून्य बैलेंस पर बैंक खाता, रुपे डेबिट कार्ड, दुर्घटना बीमा और ओवरड्राफ्ट की सुविधा मिलती है।",
		},
	},
	WestBengal: {
		LocaleTag: "bn-IN",
		Strings: Strings{
			StateName:   "পশ্চিমবঙ্গ",
			Welcome:     "লক্ষ্মী পথে আপনাকে স্বাগতম। আমি আপনার আর্থিক সহায়িকা।",
			FillDetails: "সঠিক পরামর্শ পেতে অনুগ্রহ করে আপনার তথ্য পূরণ করুন।",

			Name:     "নাম",
			Age:      "বয়স",
			Category: "শ্রেণী",
			CategoryOptions: CategoryOptions{
				Select:  "শ্রেণী নির্বাচন করুন",
				General: "সাধারণ",
				OBC:     "অনগ্রসর শ্রেণী",
				SC:      "তফসিলি জাতি",
				ST:      "তফসিলি উপজাতি",
			},
			IsTribal:       "আপনি কি আদিবাসী সম্প্রদায়ের?",
			MonthlyIncome:  "মাসিক আয় (টাকায়)",
			HasBankAccount: "আপনার কি ব্যাংক অ্যাকাউন্ট আছে?",
			BankName:       "ব্যাংকের নাম",
			Submit:         "জমা দিন",

			Advice:        "প্রতি মাসে আয়ের একটি ছোট অংশ সঞ্চয় করুন। প্রধানমন্ত্রী জন ধন যোজনায় বিনা খরচে ব্যাংক অ্যাকাউন্ট খুলুন এবং লক্ষ্মীর ভান্ডারের মতো প্রকল্পের সুবিধা নিন।",
			ChatbotPrompt: "কোনো প্রশ্ন থাকলে নিচের চ্যাট বোতাম দিয়ে আমাকে জিজ্ঞাসা করুন।",

			ChatbotButton:           "সহায়তা চ্যাট",
			ChatbotTitle:            "লক্ষ্মী সহায়িকা",
			ChatbotWelcome:          "নমস্কার! আমি কীভাবে সাহায্য করতে পারি?",
			ChatbotInputPlaceholder: "আপনার প্রশ্ন লিখুন...",
			ChatbotSendButton:       "পাঠান",
			ChatbotDefaultResponse:  "দুঃখিত, আমি বুঝতে পারিনি। অনুগ্রহ করে কোনো সরকারি প্রকল্প সম্পর্কে জিজ্ঞাসা করুন।",
			SchemeInfo:              "প্রধানমন্ত্রী জন ধন যোজনা একটি আর্থিক অন্তর্ভুক্তি প্রকল্প। এতে শূন্য ব্যালেন্সে ব্যাংক অ্যাকাউন্ট, রুপে ডেবিট কার্ড, দুর্ঘটনা বীমা এবং ওভারড্রাফটের সুবিধা পাওয়া যায়।",
		},
	},
	TamilNadu: {
		LocaleTag: "ta-IN",
		Strings: Strings{
			StateName:   "தமிழ்நாடு",
			Welcome:     "லட்சுமி பாதைக்கு வரவேற்கிறோம். நான் உங்கள் நிதி உதவியாளர்.",
			FillDetails: "சரியான ஆலோசனை பெற உங்கள் விவரங்களை நிரப்பவும்.",

			Name:     "பெயர்",
			Age:      "வயது",
			Category: "பிரிவு",
			CategoryOptions: CategoryOptions{
				Select:  "பிரிவைத் தேர்ந்தெடுக்கவும்",
				General: "பொது",
				OBC:     "பிற்படுத்தப்பட்ட வகுப்பு",
				SC:      "பட்டியல் சாதி",
				ST:      "பட்டியல் பழங்குடி",
			},
			IsTribal:       "நீங்கள் பழங்குடி சமூகத்தைச் சேர்ந்தவரா?",
			MonthlyIncome:  "மாத வருமானம் (ரூபாயில்)",
			HasBankAccount: "உங்களுக்கு வங்கிக் கணக்கு உள்ளதா?",
			BankName:       "வங்கியின் பெயர்",
			Submit:         "சமர்ப்பிக்கவும்",

			Advice:        "ஒவ்வொரு மாதமும் வருமானத்தில் ஒரு சிறு பகுதியைச் சேமியுங்கள். பிரதம மந்திரி ஜன் தன் யோஜனா மூலம் கட்டணமில்லா வங்கிக் கணக்கைத் தொடங்குங்கள்.",
			ChatbotPrompt: "ஏதேனும் கேள்விகள் இருந்தால், கீழே உள்ள அரட்டை பொத்தான் மூலம் என்னிடம் கேளுங்கள்.",

			ChatbotButton:           "உதவி அரட்டை",
			ChatbotTitle:            "லட்சுமி உதவியாளர்",
			ChatbotWelcome:          "வணக்கம்! நான் எப்படி உதவ முடியும்?",
			ChatbotInputPlaceholder: "உங்கள் கேள்வியை எழுதுங்கள்...",
			ChatbotSendButton:       "அனுப்பு",
			ChatbotDefaultResponse:  "மன்னிக்கவும், எனக்குப் புரியவில்லை. ஏதேனும் அரசுத் திட்டம் பற்றிக் கேளுங்கள்.",
			SchemeInfo:              "பிரதம மந்திரி ஜன் தன் யோஜனா ஒரு நிதி உள்ளடக்கத் திட்டம். இதில் பூஜ்ய இருப்பு வங்கிக் கணக்கு, ரூபே டெபிட் கார்டு, விபத்துக் காப்பீடு மற்றும் ஓவர் டிராஃப்ட் வசதி கிடைக்கும்.",
		},
	},
}

var fallback = Content{
	LocaleTag: "en-IN",
	Strings: Strings{
		StateName:   "India",
		Welcome:     "Welcome to Lakshmi Path. I am your financial assistant.",
		FillDetails: "Please fill in your details so we can give you the right advice.",

		Name:     "Name",
		Age:      "Age",
		Category: "Category",
		CategoryOptions: CategoryOptions{
			Select:  "Select category",
			General: "General",
			OBC:     "OBC",
			SC:      "SC",
			ST:      "ST",
		},
		IsTribal:       "Do you belong to a tribal community?",
		MonthlyIncome:  "Monthly income (in rupees)",
		HasBankAccount: "Do you have a bank account?",
		BankName:       "Bank name",
		Submit:         "Submit",

		Advice:        "Save a small part of your income every month. Open a zero-fee bank account under the Pradhan Mantri Jan Dhan Yojana and make use of government savings schemes.",
		ChatbotPrompt: "If you have any questions, ask me using the chat button below.",

		ChatbotButton:           "Help chat",
		ChatbotTitle:            "Lakshmi assistant",
		ChatbotWelcome:          "Hello! How can I help you?",
		ChatbotInputPlaceholder: "Type your question...",
		ChatbotSendButton:       "Send",
		ChatbotDefaultResponse:  "Sorry, I did not understand that. Please ask about a government scheme.",
		SchemeInfo:              "Pradhan Mantri Jan Dhan Yojana is a financial inclusion scheme. It offers a zero-balance bank account, a RuPay debit card, accident insurance and an overdraft facility.",
	},
}

// Fallback is the English content used when a region's content cannot be
// found.
func Fallback() Content { return fallback }
