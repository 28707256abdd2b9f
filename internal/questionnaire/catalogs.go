package questionnaire

// Категории речей, поддержанные продуктом. CategoryOther — запасной
// каталог для всего, что не попало в остальные.
const (
	CategoryWedding    = "wedding"
	CategoryFuneral    = "funeral"
	CategoryBusiness   = "business"
	CategoryGraduation = "graduation"
	CategoryBirthday   = "birthday"
	CategoryRetirement = "retirement"
	CategoryOther      = "other"
)

// toneOptions — варианты тона, общие для большинства каталогов.
var toneOptions = []string{"Humorous", "Formal and respectful", "Warm and heartfelt"}

var catalogs = map[string]Catalog{
	CategoryWedding: newCatalog(CategoryWedding, []Question{
		{
			Text: "Will you be introduced before you speak?",
			Kind: KindRadio, Options: []string{"Yes", "No"},
			Role: RoleGeneric,
		},
		{
			Text: "What is your name?",
			Kind: KindText, Placeholder: "e.g. Alex",
			Condition: &Condition{Question: "Will you be introduced before you speak?", Answer: "No"},
			Role:      RoleName,
		},
		{
			Text: "What is your role in the ceremony?",
			Kind: KindText, Placeholder: "e.g. Best Man, Maid of Honor, Father of the Bride",
			Role: RoleSpeaker,
		},
		{
			Text: "What are the names of the couple getting married?",
			Kind: KindText, Placeholder: "e.g. Sam and Jamie",
			Role: RoleGeneric,
		},
		{
			Text: "How do you know the couple?",
			Kind: KindTextarea, Placeholder: "Childhood friends, college roommates, family...",
			Role: RoleGeneric,
		},
		{
			Text: "Share a favorite story or memory about the couple.",
			Kind: KindTextarea,
			Role: RoleGeneric,
		},
		{
			Text: "What qualities do you admire most about them?",
			Kind: KindTextarea,
			Role: RoleGeneric,
		},
		{
			Text: "What is the main message you want to convey?",
			Kind: KindTextarea, Placeholder: "Your wish for their future together",
			Role: RoleGeneric,
		},
		{
			Text: "Who will be in the audience?",
			Kind: KindText, Placeholder: "Family, friends, colleagues...",
			Role: RoleAudience,
		},
		{
			Text: "What tone should the speech have?",
			Kind: KindRadio, Options: toneOptions,
			Role: RoleTone,
		},
		{
			Text: "Desired length of the speech (in minutes)?",
			Kind: KindText, Placeholder: "e.g. 3 minutes",
			Role: RoleDuration,
		},
		{
			Text: "How would you like to close the toast?",
			Kind: KindTextarea, Placeholder: "Raise your glasses to...",
			Role: RoleClosing,
		},
	}),

	CategoryFuneral: newCatalog(CategoryFuneral, []Question{
		{
			Text: "What is your name?",
			Kind: KindText,
			Role: RoleName,
		},
		{
			Text: "What was your relationship to the deceased?",
			Kind: KindText, Placeholder: "e.g. son, close friend, colleague",
			Role: RoleSpeaker,
		},
		{
			Text: "What was the name of the deceased?",
			Kind: KindText,
			Role: RoleGeneric,
		},
		{
			Text: "Share a cherished memory of them.",
			Kind: KindTextarea,
			Role: RoleGeneric,
		},
		{
			Text: "What qualities defined them?",
			Kind: KindTextarea, Placeholder: "Kindness, humor, devotion...",
			Role: RoleGeneric,
		},
		{
			Text: "Is there a message of comfort you want to share?",
			Kind: KindTextarea,
			Role: RoleGeneric,
		},
		{
			Text: "Who will be attending the service?",
			Kind: KindText,
			Role: RoleAudience,
		},
		{
			Text: "Desired length of the speech (in minutes)?",
			Kind: KindText, Placeholder: "e.g. 5 minutes",
			Role: RoleDuration,
		},
		{
			Text: "How would you like to conclude the eulogy?",
			Kind: KindTextarea, Placeholder: "A farewell, a quote, a moment of silence...",
			Role: RoleClosing,
		},
	}),

	CategoryBusiness: newCatalog(CategoryBusiness, []Question{
		{
			Text: "Will you be introduced before you speak?",
			Kind: KindRadio, Options: []string{"Yes", "No"},
			Role: RoleGeneric,
		},
		{
			Text: "What is your name?",
			Kind: KindText,
			Condition: &Condition{Question: "Will you be introduced before you speak?", Answer: "No"},
			Role:      RoleName,
		},
		{
			Text: "What is your role or position?",
			Kind: KindText, Placeholder: "e.g. CEO, Head of Sales, Project Lead",
			Role: RoleSpeaker,
		},
		{
			Text: "What is the occasion for this speech?",
			Kind: KindText, Placeholder: "Product launch, quarterly meeting, conference keynote...",
			Role: RoleGeneric,
		},
		{
			Text: "What achievement or milestone do you want to highlight?",
			Kind: KindTextarea,
			Role: RoleGeneric,
		},
		{
			Text: "What is the key takeaway for your audience?",
			Kind: KindTextarea,
			Role: RoleGeneric,
		},
		{
			Text: "Who is your audience?",
			Kind: KindText, Placeholder: "Employees, investors, clients...",
			Role: RoleAudience,
		},
		{
			Text: "What tone should the speech have?",
			Kind: KindRadio, Options: toneOptions,
			Role: RoleTone,
		},
		{
			Text: "Desired length of the speech (in minutes)?",
			Kind: KindText, Placeholder: "e.g. 10 minutes",
			Role: RoleDuration,
		},
		{
			Text: "Is there a call to action for the conclusion?",
			Kind: KindTextarea,
			Role: RoleClosing,
		},
	}),

	CategoryGraduation: newCatalog(CategoryGraduation, []Question{
		{
			Text: "What is your name?",
			Kind: KindText,
			Role: RoleName,
		},
		{
			Text: "What is your connection to the graduating class?",
			Kind: KindText, Placeholder: "Valedictorian, faculty member, guest speaker...",
			Role: RoleSpeaker,
		},
		{
			Text: "Share a defining experience from these years.",
			Kind: KindTextarea,
			Role: RoleGeneric,
		},
		{
			Text: "What challenges did the class overcome together?",
			Kind: KindTextarea,
			Role: RoleGeneric,
		},
		{
			Text: "What message do you want to leave the graduates with?",
			Kind: KindTextarea,
			Role: RoleGeneric,
		},
		{
			Text: "Who will be in the audience?",
			Kind: KindText, Placeholder: "Graduates, parents, faculty...",
			Role: RoleAudience,
		},
		{
			Text: "What tone should the speech have?",
			Kind: KindRadio, Options: toneOptions,
			Role: RoleTone,
		},
		{
			Text: "Desired length of the speech (in minutes)?",
			Kind: KindText,
			Role: RoleDuration,
		},
		{
			Text: "How would you like to close the speech?",
			Kind: KindTextarea, Placeholder: "Congratulations, a parting wish...",
			Role: RoleClosing,
		},
	}),

	CategoryBirthday: newCatalog(CategoryBirthday, []Question{
		{
			Text: "What is your name?",
			Kind: KindText,
			Role: RoleName,
		},
		{
			Text: "What is your relationship to the birthday person?",
			Kind: KindText, Placeholder: "Best friend, sibling, partner...",
			Role: RoleSpeaker,
		},
		{
			Text: "Whose birthday is it, and which one?",
			Kind: KindText, Placeholder: "e.g. Maria's 40th",
			Role: RoleGeneric,
		},
		{
			Text: "Share a favorite memory with them.",
			Kind: KindTextarea,
			Role: RoleGeneric,
		},
		{
			Text: "What do you admire most about them?",
			Kind: KindTextarea,
			Role: RoleGeneric,
		},
		{
			Text: "What is your wish for the year ahead?",
			Kind: KindTextarea,
			Role: RoleGeneric,
		},
		{
			Text: "Who will be at the celebration?",
			Kind: KindText,
			Role: RoleAudience,
		},
		{
			Text: "What tone should the speech have?",
			Kind: KindRadio, Options: toneOptions,
			Role: RoleTone,
		},
		{
			Text: "Desired length of the speech (in minutes)?",
			Kind: KindText,
			Role: RoleDuration,
		},
		{
			Text: "How would you like to close the toast?",
			Kind: KindTextarea,
			Role: RoleClosing,
		},
	}),

	CategoryRetirement: newCatalog(CategoryRetirement, []Question{
		{
			Text: "What is your name?",
			Kind: KindText,
			Role: RoleName,
		},
		{
			Text: "What is your role at the company?",
			Kind: KindText,
			Role: RoleSpeaker,
		},
		{
			Text: "Who is retiring, and after how many years?",
			Kind: KindText, Placeholder: "e.g. Robert, after 30 years",
			Role: RoleGeneric,
		},
		{
			Text: "Share a memorable story from working together.",
			Kind: KindTextarea,
			Role: RoleGeneric,
		},
		{
			Text: "What achievements should be celebrated?",
			Kind: KindTextarea,
			Role: RoleGeneric,
		},
		{
			Text: "What message do you want to send them off with?",
			Kind: KindTextarea,
			Role: RoleGeneric,
		},
		{
			Text: "Who will be in the audience?",
			Kind: KindText, Placeholder: "Colleagues, family, leadership...",
			Role: RoleAudience,
		},
		{
			Text: "What tone should the speech have?",
			Kind: KindRadio, Options: toneOptions,
			Role: RoleTone,
		},
		{
			Text: "Desired length of the speech (in minutes)?",
			Kind: KindText,
			Role: RoleDuration,
		},
		{
			Text: "How would you like to conclude?",
			Kind: KindTextarea,
			Role: RoleClosing,
		},
	}),

	CategoryOther: newCatalog(CategoryOther, []Question{
		{
			Text: "What is your name?",
			Kind: KindText,
			Role: RoleName,
		},
		{
			Text: "What is your role at this event?",
			Kind: KindText,
			Role: RoleSpeaker,
		},
		{
			Text: "What is the occasion?",
			Kind: KindText,
			Role: RoleGeneric,
		},
		{
			Text: "Share a story or experience relevant to the occasion.",
			Kind: KindTextarea,
			Role: RoleGeneric,
		},
		{
			Text: "What is the main message you want to convey?",
			Kind: KindTextarea,
			Role: RoleGeneric,
		},
		{
			Text: "Who will be in the audience?",
			Kind: KindText,
			Role: RoleAudience,
		},
		{
			Text: "What tone should the speech have?",
			Kind: KindRadio, Options: toneOptions,
			Role: RoleTone,
		},
		{
			Text: "Desired length of the speech (in minutes)?",
			Kind: KindText,
			Role: RoleDuration,
		},
		{
			Text: "How would you like to close the speech?",
			Kind: KindTextarea,
			Role: RoleClosing,
		},
	}),
}

// Categories возвращает список имен каталогов в стабильном порядке.
func Categories() []string {
	return []string{
		CategoryWedding,
		CategoryFuneral,
		CategoryBusiness,
		CategoryGraduation,
		CategoryBirthday,
		CategoryRetirement,
		CategoryOther,
	}
}

// CatalogFor возвращает каталог вопросов для категории.
// Неизвестная категория получает каталог CategoryOther.
func CatalogFor(category string) Catalog {
	if c, ok := catalogs[category]; ok {
		return c
	}
	return catalogs[CategoryOther]
}

// KnownCategory сообщает, определен ли каталог для категории.
func KnownCategory(category string) bool {
	_, ok := catalogs[category]
	return ok
}
