package catalog

// SeedMonuments returns the fixed initial monument catalog, used when no
// persisted collection exists yet.
func SeedMonuments() []Monument {
	return []Monument{
		{
			ID:          "m1",
			Name:        "Taj Mahal",
			State:       "Uttar Pradesh",
			Image:       "https://images.unsplash.com/photo-1564507592333-c60657eea523?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
			Description: "An ivory-white marble mausoleum on the right bank of the river Yamuna in Agra, built by Mughal emperor Shah Jahan in memory of his wife Mumtaz Mahal. Completed in 1653, it stands as the jewel of Muslim art in India and one of the universally admired masterpieces of the world's heritage. The monument combines elements from Persian, Ottoman Turkish and Indian architectural styles.",
			Era:         "Mughal",
			Year:        "1653",
			Rating:      4.9,
			Visitors:    "7-8 million/year",
		},
		{
			ID:          "m2",
			Name:        "Red Fort",
			State:       "Delhi",
			Image:       "https://images.unsplash.com/photo-1713729991304-d0b6c328560e?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
			Description: "A historic fort built in 1648 by Mughal Emperor Shah Jahan as the palace for his new capital, Shahjahanabad. Its massive red sandstone walls stretch for 2.5 km and rise to a height of 18 meters. The fort served as the main residence of Mughal emperors for nearly 200 years and contains impressive structures like Diwan-i-Aam, Diwan-i-Khas, and the pearl mosque. It's a UNESCO World Heritage Site.",
			Era:         "Mughal",
			Year:        "1648",
			Rating:      4.7,
			Visitors:    "3 million/year",
		},
		{
			ID:          "m3",
			Name:        "Qutub Minar",
			State:       "Delhi",
			Image:       "https://images.unsplash.com/photo-1667849521359-067272da8156?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
			Description: "A 73-meter tall tapering tower of red sandstone and marble, begun by Qutb-ud-din Aibak in 1199 and completed by his successors. It's the tallest brick minaret in the world and an outstanding example of Indo-Islamic architecture. The tower has five distinct stories, each marked by a projecting balcony with inscriptions from the Quran and intricate carvings. The complex also includes the famous Iron Pillar and Quwwat-ul-Islam Mosque.",
			Era:         "Medieval",
			Year:        "1199",
			Rating:      4.6,
			Visitors:    "2.5 million/year",
		},
		{
			ID:          "m4",
			Name:        "Gateway of India",
			State:       "Maharashtra",
			Image:       "https://images.unsplash.com/photo-1529253355930-ddbe423a2ac7?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
			Description: "An iconic arch monument built in 1924 during the British Raj to commemorate the landing of King George V and Queen Mary at Apollo Bunder in Mumbai. Standing at 26 meters tall, it combines Hindu and Muslim architectural styles with elements of Roman triumphal arches. The monument overlooks the Arabian Sea and has become one of Mumbai's most recognizable landmarks, symbolizing both colonial history and India's independence.",
			Era:         "Colonial",
			Year:        "1924",
			Rating:      4.5,
			Visitors:    "4 million/year",
		},
		{
			ID:          "m5",
			Name:        "Hawa Mahal",
			State:       "Rajasthan",
			Image:       "https://images.unsplash.com/photo-1650530777057-3a7dbc24bf6c?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
			Description: "The Palace of Winds, built in 1799 by Maharaja Sawai Pratap Singh in Jaipur's Pink City. This five-story pink and red sandstone structure features 953 small windows called jharokhas, designed with intricate latticework. Built to allow royal ladies to observe street festivals while remaining unseen, the facade resembles a honeycomb. The monument is an excellent example of Rajput architecture blended with Mughal influence.",
			Era:         "Medieval",
			Year:        "1799",
			Rating:      4.8,
			Visitors:    "1.5 million/year",
		},
		{
			ID:          "m6",
			Name:        "Amber Fort",
			State:       "Rajasthan",
			Image:       "https://images.unsplash.com/photo-1599661046827-dacff0c0f09a?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
			Description: "A majestic fort palace constructed in 1592 by Raja Man Singh I, perched on a hilltop overlooking Maota Lake near Jaipur. Built with red sandstone and marble, it features four courtyards, elaborate gates, and stunning mirror work in the Sheesh Mahal. The fort exemplifies the blend of Hindu and Rajput architecture with its artistic paintings, carvings, and the beautiful Ganesh Pol gateway. It's a UNESCO World Heritage Site.",
			Era:         "Medieval",
			Year:        "1592",
			Rating:      4.9,
			Visitors:    "5000/day",
		},
		{
			ID:          "m7",
			Name:        "Hampi Ruins",
			State:       "Karnataka",
			Image:       "https://images.unsplash.com/photo-1631986683754-7d511e03864d?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
			Description: "Ancient village featuring ruins of the former Vijayanagara Empire capital, which flourished from 1336 to 1565. The site contains over 1,600 monuments including temples, palaces, fortifications, and water structures spread across 4,100 hectares. The Virupaksha Temple, stone chariot, and Vittala Temple complex showcase remarkable Dravidian architecture. Hampi is a UNESCO World Heritage Site and represents one of the greatest Hindu kingdoms in Indian history.",
			Era:         "Medieval",
			Year:        "1336",
			Rating:      4.7,
			Visitors:    "500k/year",
		},
		{
			ID:          "m8",
			Name:        "Mysore Palace",
			State:       "Karnataka",
			Image:       "https://images.unsplash.com/photo-1657856855186-7cf4909a4f78?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
			Description: "A spectacular palace built between 1897 and 1912 as the official residence of the Wadiyar dynasty, who ruled the Kingdom of Mysore. The three-storied structure combines Hindu, Muslim, Rajput, and Gothic architectural styles. It features magnificent domes, arches, and pillars with intricate carvings. The palace houses ornate halls, paintings, and the Golden Howdah throne. During Dussehra festival, it's illuminated with nearly 100,000 lights, creating a breathtaking spectacle.",
			Era:         "Colonial",
			Year:        "1912",
			Rating:      4.8,
			Visitors:    "6 million/year",
		},
		{
			ID:          "m9",
			Name:        "Konark Sun Temple",
			State:       "Odisha",
			Image:       "https://images.unsplash.com/photo-1677211352662-30e7775c7ce8?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
			Description: "A 13th-century Hindu temple built by King Narasimhadeva I, dedicated to the Sun God Surya. Designed as a giant stone chariot with 12 pairs of elaborately carved stone wheels pulled by seven horses, it represents the chariot of the Sun God. The temple showcases exquisite Kalinga architecture with intricate erotic sculptures, mythological figures, and geometric patterns. Though partially in ruins, it remains one of India's most iconic monuments and a UNESCO World Heritage Site.",
			Era:         "Medieval",
			Year:        "1250",
			Rating:      4.8,
			Visitors:    "3000/day",
		},
		{
			ID:          "m10",
			Name:        "Ajanta Caves",
			State:       "Maharashtra",
			Image:       "https://images.unsplash.com/photo-1620558601903-9f2441730121?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
			Description: "Ancient Buddhist cave monuments carved into a horseshoe-shaped cliff, dating from the 2nd century BCE to 480 CE. The 30 rock-cut caves contain paintings and sculptures depicting the life of Buddha and various Buddhist deities. These masterpieces of Buddhist religious art influenced Indian art for centuries. The caves showcase remarkable technique and artistry with natural pigments that have survived for over 2,000 years. Recognized as a UNESCO World Heritage Site.",
			Era:         "Ancient",
			Year:        "200 BCE",
			Rating:      4.7,
			Visitors:    "200k/year",
		},
		{
			ID:          "m11",
			Name:        "Victoria Memorial",
			State:       "West Bengal",
			Image:       "https://images.unsplash.com/photo-1697817665440-f988c6d5080f?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
			Description: "A grand marble building constructed between 1906 and 1921 to commemorate Queen Victoria's 25 years of rule in India. Built in Indo-Saracenic Revival style with Mughal and Venetian influences, it features a 64-meter high central dome crowned with a bronze Victory Angel. Set in 64 acres of manicured gardens, it now serves as a museum housing paintings, sculptures, and artifacts from the British Raj period. A symbol of Kolkata's colonial heritage.",
			Era:         "Colonial",
			Year:        "1921",
			Rating:      4.6,
			Visitors:    "2 million/year",
		},
		{
			ID:          "m12",
			Name:        "Charminar",
			State:       "Telangana",
			Image:       "https://images.unsplash.com/photo-1696941515998-d83f24967aca?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
			Description: "An iconic monument built in 1591 by Muhammad Quli Qutb Shah to commemorate the end of a deadly plague in Hyderabad. The name means 'Four Towers' in Urdu, featuring four grand arches facing the cardinal directions. Standing 56 meters tall with 149 winding steps to the upper floor, it combines Islamic and Persian architectural styles. The monument houses a mosque on the top floor and has become the most recognized structure and symbol of Hyderabad.",
			Era:         "Medieval",
			Year:        "1591",
			Rating:      4.5,
			Visitors:    "10k/day",
		},
		{
			ID:          "m13",
			Name:        "Meenakshi Temple",
			State:       "Tamil Nadu",
			Image:       "https://images.unsplash.com/photo-1692173248120-59547c3d4653?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
			Description: "A historic Hindu temple dedicated to Goddess Meenakshi (Parvati) and her consort Sundareshwar (Shiva), located in Madurai. The temple complex spans 14 acres with 12 towering gopurams (gateway towers) covered with thousands of colorful sculptures depicting gods, goddesses, and mythological creatures. Built between 1623 and 1655, it represents the pinnacle of Dravidian architecture. The Hall of Thousand Pillars showcases stunning stone carvings and is a major pilgrimage site.",
			Era:         "Medieval",
			Year:        "1655",
			Rating:      4.9,
			Visitors:    "15k/day",
		},
		{
			ID:          "m14",
			Name:        "Golden Temple",
			State:       "Punjab",
			Image:       "https://images.unsplash.com/photo-1623059508779-2542c6e83753?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
			Description: "Also known as Harmandir Sahib, this holiest Gurdwara of Sikhism was founded by Guru Ramdas Ji in 1577 and completed by Guru Arjan Dev Ji in 1604. The upper floors are covered with gold leaf, giving it its iconic appearance. The temple sits in the center of a sacred pool (Amrit Sarovar) and welcomes people of all religions. The complex serves free meals to over 100,000 people daily, exemplifying Sikh principles of equality and service.",
			Era:         "Medieval",
			Year:        "1604",
			Rating:      5.0,
			Visitors:    "100k/day",
		},
		{
			ID:          "m15",
			Name:        "Khajuraho Temples",
			State:       "Madhya Pradesh",
			Image:       "https://images.unsplash.com/photo-1606298855672-3efb63017be8?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
			Description: "A group of Hindu and Jain temples built between 950 and 1050 CE by the Chandela dynasty. Famous worldwide for their intricate erotic sculptures representing the tantric traditions, these temples showcase exceptional Nagara-style architecture. Only 25 of the original 85 temples survive today. The sculptures depict various aspects of life including gods, goddesses, warriors, musicians, and daily activities. The temples are renowned for their architectural symbolism and sophisticated sandstone carvings. UNESCO World Heritage Site.",
			Era:         "Medieval",
			Year:        "1050",
			Rating:      4.7,
			Visitors:    "500k/year",
		},
	}
}

// SeedTours returns the fixed initial virtual-tour catalog.
func SeedTours() []Tour {
	return []Tour{
		{
			ID:        "t1",
			Title:     "Taj Mahal 360° Virtual Tour",
			URL:       "https://www.youtube.com/embed/4Qe8rYc1zKQ",
			Thumbnail: "https://images.unsplash.com/photo-1564507592333-c60657eea523?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=400",
			Duration:  "15 min",
		},
		{
			ID:        "t2",
			Title:     "Hampi Heritage Walkthrough",
			URL:       "https://www.youtube.com/embed/5o2KpZ4Zk0o",
			Thumbnail: "https://images.unsplash.com/photo-1631986683754-7d511e03864d?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=400",
			Duration:  "20 min",
		},
	}
}
