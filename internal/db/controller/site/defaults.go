package site

import "github.com/mohozompur-madrasa/madrasa-site/internal/db/models"

const siteName = "মহজমপুর হাফিজিয়া এতিমখানা মাদরাসা"

// DefaultHero is served until the hero is saved for the first time.
func DefaultHero() Hero {
	return Hero{
		Name:        siteName,
		Slogan:      "কুরআন মাজিদ শিক্ষা কেন্দ্র",
		Description: "দ্বীনি শিক্ষায় আদর্শ মানুষ গড়ার প্রত্যয়ে প্রতিষ্ঠিত",
		ButtonText:  "যোগাযোগ করুন",
	}
}

// DefaultAbout is served until the about section is saved for the first time.
func DefaultAbout() About {
	return About{
		Text: "মহজমপুর হাফিজিয়া এতিমখানা মাদরাসা ১৯৯০ সাল থেকে এতিম ও সাধারণ শিক্ষার্থীদের হিফজুল কুরআন ও নৈতিক শিক্ষা " +
			"প্রদান করে আসছে। আমাদের লক্ষ্য হলো প্রতিটি শিক্ষার্থীকে আদর্শ মানুষ ও সত্যিকারের মুসলিম হিসেবে গড়ে তোলা। " +
			"এখানে শিক্ষার্থীরা পবিত্র কুরআন হিফজ করার পাশাপাশি ইসলামী আদব-কায়দা, নৈতিকতা এবং সমাজে কীভাবে একজন " +
			"আদর্শ মানুষ হিসেবে বসবাস করতে হয় তা শেখে।",
		Mission: "দ্বীনি শিক্ষার আলোয় আলোকিত করে প্রতিটি শিক্ষার্থীকে সমাজের জন্য উপযোগী, আদর্শ ও নৈতিক মানুষ হিসেবে " +
			"গড়ে তোলা। আমরা বিশ্বাস করি প্রতিটি শিশুই আল্লাহর আমানত এবং তাদের সঠিক শিক্ষা ও পরিচর্যার মাধ্যমে " +
			"উম্মাহর জন্য অবদান রাখতে সক্ষম।",
	}
}

// DefaultBranding is served until the branding is saved for the first time.
func DefaultBranding() Branding {
	empty := ""

	return Branding{SiteName: siteName, LogoURL: &empty}
}

// DefaultNotices are the starter notices of a fresh install.
func DefaultNotices() []models.Notice {
	return []models.Notice{
		{
			Title: "ভর্তি বিজ্ঞপ্তি ২০২৫",
			Description: "নতুন শিক্ষাবর্ষের জন্য ভর্তি কার্যক্রম শুরু হয়েছে। এতিম ও সাধারণ শিক্ষার্থীদের জন্য আসন সংখ্যা সীমিত। " +
				"আগ্রহী অভিভাবকগণ যোগাযোগ করুন।",
			Date: "2025-01-15",
		},
		{
			Title:       "বার্ষিক পরীক্ষার সময়সূচি",
			Description: "বার্ষিক পরীক্ষা আগামী মাসে অনুষ্ঠিত হবে। সকল শিক্ষার্থীদের প্রস্তুতি নেওয়ার জন্য অনুরোধ করা হচ্ছে।",
			Date:        "2025-02-01",
		},
		{
			Title: "দোয়া ও মিলাদ মাহফিল",
			Description: "আগামী শুক্রবার জোহরের নামাযের পর মাদ্রাসা প্রাঙ্গণে দোয়া ও মিলাদ মাহফিল অনুষ্ঠিত হবে। " +
				"সকলকে উপস্থিত থাকার জন্য আমন্ত্রণ জানানো হচ্ছে।",
			Date: "2024-12-20",
		},
	}
}
