package cards

// Built-in card catalog. Ids are stable: they are persisted inside room
// documents (usedCardIds, roundCardIds), so renumbering breaks saved games.
var deck = []Card{
	// Анатомия и органы
	{Id: "anatomy-1", Word: "Сердце", Category: CategoryAnatomy, Forbidden: []string{"орган", "кровь", "стучит", "грудь"}, Fact: "Сердце перекачивает около 7 000 литров крови в сутки."},
	{Id: "anatomy-2", Word: "Печень", Category: CategoryAnatomy, Forbidden: []string{"орган", "фильтр", "алкоголь", "желчь"}, Fact: "Печень — единственный орган человека, способный к регенерации."},
	{Id: "anatomy-3", Word: "Лёгкие", Category: CategoryAnatomy, Forbidden: []string{"дыхание", "воздух", "кислород", "грудь"}, Fact: "Суммарная поверхность альвеол лёгких сопоставима с теннисным кортом."},
	{Id: "anatomy-4", Word: "Позвоночник", Category: CategoryAnatomy, Forbidden: []string{"спина", "кости", "осанка", "хребет"}, Fact: "В позвоночнике человека 33–34 позвонка."},
	{Id: "anatomy-5", Word: "Мозжечок", Category: CategoryAnatomy, Forbidden: []string{"мозг", "равновесие", "координация", "голова"}, Fact: "Мозжечок содержит больше половины всех нейронов мозга."},
	{Id: "anatomy-6", Word: "Аорта", Category: CategoryAnatomy, Forbidden: []string{"сосуд", "артерия", "кровь", "сердце"}, Fact: "Аорта — самая крупная артерия, её диаметр около 3 сантиметров."},
	{Id: "anatomy-7", Word: "Селезёнка", Category: CategoryAnatomy, Forbidden: []string{"орган", "кровь", "живот", "иммунитет"}, Fact: "Селезёнка служит резервным хранилищем крови."},
	{Id: "anatomy-8", Word: "Диафрагма", Category: CategoryAnatomy, Forbidden: []string{"дыхание", "мышца", "живот", "грудь"}, Fact: "Икота — это непроизвольное сокращение диафрагмы."},
	{Id: "anatomy-9", Word: "Барабанная перепонка", Category: CategoryAnatomy, Forbidden: []string{"ухо", "слух", "звук", "мембрана"}, Fact: "Толщина барабанной перепонки — около 0,1 миллиметра."},
	{Id: "anatomy-10", Word: "Ахиллово сухожилие", Category: CategoryAnatomy, Forbidden: []string{"пятка", "нога", "мышца", "герой"}, Fact: "Ахиллово сухожилие — самое прочное сухожилие человека."},
	{Id: "anatomy-11", Word: "Гипофиз", Category: CategoryAnatomy, Forbidden: []string{"железа", "мозг", "гормоны", "рост"}, Fact: "Гипофиз размером с горошину управляет большинством гормонов тела."},
	{Id: "anatomy-12", Word: "Роговица", Category: CategoryAnatomy, Forbidden: []string{"глаз", "зрение", "линза", "прозрачная"}, Fact: "Роговица — единственная ткань тела без кровеносных сосудов."},

	// Стоматология и ортодонтия
	{Id: "dental-1", Word: "Брекеты", Category: CategoryDental, Forbidden: []string{"зубы", "прикус", "исправление", "металл"}, Fact: "Первые брекеты появились ещё в начале XX века."},
	{Id: "dental-2", Word: "Кариес", Category: CategoryDental, Forbidden: []string{"зуб", "дырка", "сладкое", "боль"}, Fact: "Кариес — самое распространённое заболевание в мире."},
	{Id: "dental-3", Word: "Эмаль", Category: CategoryDental, Forbidden: []string{"зуб", "покрытие", "твёрдая", "белая"}, Fact: "Зубная эмаль — самая твёрдая ткань человеческого организма."},
	{Id: "dental-4", Word: "Зуб мудрости", Category: CategoryDental, Forbidden: []string{"восьмёрка", "удаление", "прорезывание", "взрослый"}, Fact: "У некоторых людей зубы мудрости не закладываются вовсе."},
	{Id: "dental-5", Word: "Пломба", Category: CategoryDental, Forbidden: []string{"зуб", "дырка", "кариес", "ставить"}, Fact: "Древнейшей найденной пломбе из пчелиного воска 6 500 лет."},
	{Id: "dental-6", Word: "Имплант", Category: CategoryDental, Forbidden: []string{"зуб", "титан", "вживление", "протез"}, Fact: "Современные импланты делают из титана: он срастается с костью."},
	{Id: "dental-7", Word: "Прикус", Category: CategoryDental, Forbidden: []string{"зубы", "челюсть", "смыкание", "ортодонт"}, Fact: "Неправильный прикус встречается у восьми из десяти людей."},
	{Id: "dental-8", Word: "Зубной камень", Category: CategoryDental, Forbidden: []string{"налёт", "чистка", "твёрдый", "зубы"}, Fact: "Зубной камень — это минерализовавшийся зубной налёт."},
	{Id: "dental-9", Word: "Коронка", Category: CategoryDental, Forbidden: []string{"зуб", "протез", "колпачок", "керамика"}, Fact: "Керамическую коронку подбирают по цвету соседних зубов."},
	{Id: "dental-10", Word: "Флюороз", Category: CategoryDental, Forbidden: []string{"фтор", "пятна", "эмаль", "вода"}, Fact: "Флюороз возникает от избытка фтора, чаще всего из питьевой воды."},
	{Id: "dental-11", Word: "Элайнеры", Category: CategoryDental, Forbidden: []string{"капа", "прозрачные", "брекеты", "выравнивание"}, Fact: "Элайнеры печатают на 3D-принтере индивидуально под пациента."},
	{Id: "dental-12", Word: "Молочные зубы", Category: CategoryDental, Forbidden: []string{"дети", "выпадают", "первые", "смена"}, Fact: "Молочных зубов всего 20, постоянных — до 32."},

	// Болезни и симптомы
	{Id: "diseases-1", Word: "Грипп", Category: CategoryDiseases, Forbidden: []string{"вирус", "температура", "простуда", "эпидемия"}, Fact: "Вирус гриппа меняется так быстро, что вакцину обновляют каждый год."},
	{Id: "diseases-2", Word: "Аппендицит", Category: CategoryDiseases, Forbidden: []string{"живот", "операция", "отросток", "боль"}, Fact: "Аппендикс участвует в работе иммунной системы кишечника."},
	{Id: "diseases-3", Word: "Мигрень", Category: CategoryDiseases, Forbidden: []string{"голова", "боль", "приступ", "свет"}, Fact: "Мигренью страдает примерно каждый седьмой человек на планете."},
	{Id: "diseases-4", Word: "Ветрянка", Category: CategoryDiseases, Forbidden: []string{"сыпь", "зелёнка", "дети", "зуд"}, Fact: "Вирус ветрянки остаётся в организме и может вернуться опоясывающим лишаём."},
	{Id: "diseases-5", Word: "Анемия", Category: CategoryDiseases, Forbidden: []string{"кровь", "железо", "гемоглобин", "слабость"}, Fact: "Самая частая причина анемии — дефицит железа."},
	{Id: "diseases-6", Word: "Астма", Category: CategoryDiseases, Forbidden: []string{"дыхание", "приступ", "ингалятор", "удушье"}, Fact: "Слово «астма» по-гречески означает «тяжёлое дыхание»."},
	{Id: "diseases-7", Word: "Гипертония", Category: CategoryDiseases, Forbidden: []string{"давление", "высокое", "тонометр", "сосуды"}, Fact: "Гипертонию называют «тихим убийцей»: она часто не даёт симптомов."},
	{Id: "diseases-8", Word: "Аллергия", Category: CategoryDiseases, Forbidden: []string{"реакция", "пыльца", "зуд", "иммунитет"}, Fact: "Термин «аллергия» ввёл педиатр Клеменс фон Пирке в 1906 году."},
	{Id: "diseases-9", Word: "Ангина", Category: CategoryDiseases, Forbidden: []string{"горло", "миндалины", "боль", "глотать"}, Fact: "Ангину вызывают бактерии, поэтому её лечат антибиотиками."},
	{Id: "diseases-10", Word: "Сколиоз", Category: CategoryDiseases, Forbidden: []string{"позвоночник", "искривление", "осанка", "спина"}, Fact: "Лёгкая степень сколиоза есть почти у половины школьников."},
	{Id: "diseases-11", Word: "Конъюнктивит", Category: CategoryDiseases, Forbidden: []string{"глаз", "покраснение", "воспаление", "капли"}, Fact: "Конъюнктива — прозрачная оболочка, покрывающая белок глаза."},
	{Id: "diseases-12", Word: "Гастрит", Category: CategoryDiseases, Forbidden: []string{"желудок", "воспаление", "еда", "боль"}, Fact: "Главный виновник гастрита — бактерия Helicobacter pylori."},

	// Лекарства и инструменты
	{Id: "tools-1", Word: "Скальпель", Category: CategoryTools, Forbidden: []string{"нож", "хирург", "операция", "резать"}, Fact: "Современные скальпели часто одноразовые: лезвие меняют после каждой операции."},
	{Id: "tools-2", Word: "Фонендоскоп", Category: CategoryTools, Forbidden: []string{"слушать", "сердце", "врач", "трубка"}, Fact: "Прообраз фонендоскопа Лаэннек свернул из бумажной трубки в 1816 году."},
	{Id: "tools-3", Word: "Шприц", Category: CategoryTools, Forbidden: []string{"укол", "игла", "лекарство", "вводить"}, Fact: "Слово «шприц» происходит от немецкого spritzen — «брызгать»."},
	{Id: "tools-4", Word: "Аспирин", Category: CategoryTools, Forbidden: []string{"таблетка", "боль", "температура", "кровь"}, Fact: "Действующее вещество аспирина изначально получали из коры ивы."},
	{Id: "tools-5", Word: "Тонометр", Category: CategoryTools, Forbidden: []string{"давление", "манжета", "измерять", "рука"}, Fact: "Первый тонометр измерял давление по пульсации артерии под манжетой."},
	{Id: "tools-6", Word: "Пенициллин", Category: CategoryTools, Forbidden: []string{"антибиотик", "плесень", "Флеминг", "бактерии"}, Fact: "Пенициллин был открыт случайно — из-за заплесневевшей чашки Петри."},
	{Id: "tools-7", Word: "Градусник", Category: CategoryTools, Forbidden: []string{"температура", "ртуть", "мерить", "подмышка"}, Fact: "Ртутные градусники запрещены во многих странах из-за токсичности ртути."},
	{Id: "tools-8", Word: "Зелёнка", Category: CategoryTools, Forbidden: []string{"раствор", "рана", "зелёный", "мазать"}, Fact: "Бриллиантовый зелёный как антисептик применяют почти только в СНГ."},
	{Id: "tools-9", Word: "Капельница", Category: CategoryTools, Forbidden: []string{"вена", "раствор", "стойка", "капать"}, Fact: "Скорость инфузии считают в каплях в минуту."},
	{Id: "tools-10", Word: "Пинцет", Category: CategoryTools, Forbidden: []string{"захват", "щипцы", "заноза", "инструмент"}, Fact: "Хирургический пинцет отличается от анатомического зубчиками на концах."},
	{Id: "tools-11", Word: "Активированный уголь", Category: CategoryTools, Forbidden: []string{"чёрный", "таблетка", "отравление", "сорбент"}, Fact: "Один грамм активированного угля имеет площадь поверхности до 2 000 м²."},
	{Id: "tools-12", Word: "Жгут", Category: CategoryTools, Forbidden: []string{"кровотечение", "перетянуть", "рука", "резина"}, Fact: "Под жгут обязательно кладут записку со временем наложения."},

	// Интересные факты
	{Id: "facts-1", Word: "Плацебо", Category: CategoryFacts, Forbidden: []string{"пустышка", "эффект", "внушение", "таблетка"}, Fact: "Эффект плацебо работает, даже когда пациент знает, что принимает пустышку."},
	{Id: "facts-2", Word: "Иммунитет", Category: CategoryFacts, Forbidden: []string{"защита", "организм", "антитела", "болезнь"}, Fact: "Иммунная система запоминает возбудителей на десятилетия вперёд."},
	{Id: "facts-3", Word: "ДНК", Category: CategoryFacts, Forbidden: []string{"ген", "спираль", "наследственность", "код"}, Fact: "Если распутать ДНК одной клетки, её длина составит около двух метров."},
	{Id: "facts-4", Word: "Вакцина", Category: CategoryFacts, Forbidden: []string{"прививка", "укол", "защита", "вирус"}, Fact: "Слово «вакцина» происходит от латинского vacca — «корова»."},
	{Id: "facts-5", Word: "Рентген", Category: CategoryFacts, Forbidden: []string{"снимок", "лучи", "кости", "просвечивать"}, Fact: "Вильгельм Рентген отказался патентовать своё открытие."},
	{Id: "facts-6", Word: "Анестезия", Category: CategoryFacts, Forbidden: []string{"наркоз", "боль", "операция", "сон"}, Fact: "Первую публичную операцию под эфирным наркозом провели в 1846 году."},
	{Id: "facts-7", Word: "Клятва Гиппократа", Category: CategoryFacts, Forbidden: []string{"врач", "обещание", "этика", "древняя"}, Fact: "Современные выпускники дают не оригинальную клятву, а её переработанные версии."},
	{Id: "facts-8", Word: "Донорство", Category: CategoryFacts, Forbidden: []string{"кровь", "сдавать", "переливание", "помощь"}, Fact: "Одна донация крови может спасти до трёх жизней."},
	{Id: "facts-9", Word: "Гемоглобин", Category: CategoryFacts, Forbidden: []string{"кровь", "железо", "кислород", "красный"}, Fact: "Красный цвет крови даёт железо в составе гемоглобина."},
	{Id: "facts-10", Word: "Карантин", Category: CategoryFacts, Forbidden: []string{"изоляция", "инфекция", "сорок", "дней"}, Fact: "Слово «карантин» — от итальянского quaranta giorni, «сорок дней»."},
	{Id: "facts-11", Word: "Микроб", Category: CategoryFacts, Forbidden: []string{"бактерия", "маленький", "микроскоп", "зараза"}, Fact: "Бактериальных клеток в теле человека не меньше, чем собственных."},
	{Id: "facts-12", Word: "Адреналин", Category: CategoryFacts, Forbidden: []string{"гормон", "страх", "стресс", "надпочечники"}, Fact: "Адреналин был первым гормоном, полученным в чистом виде."},

	// Медицинские профессии
	{Id: "professions-1", Word: "Хирург", Category: CategoryProfessions, Forbidden: []string{"операция", "скальпель", "резать", "врач"}, Fact: "Слово «хирургия» переводится с греческого как «рукодействие»."},
	{Id: "professions-2", Word: "Педиатр", Category: CategoryProfessions, Forbidden: []string{"дети", "врач", "детский", "осмотр"}, Fact: "Педиатрия выделилась в отдельную специальность лишь в XIX веке."},
	{Id: "professions-3", Word: "Анестезиолог", Category: CategoryProfessions, Forbidden: []string{"наркоз", "операция", "сон", "врач"}, Fact: "Анестезиолог следит за пациентом всю операцию, а не только усыпляет."},
	{Id: "professions-4", Word: "Окулист", Category: CategoryProfessions, Forbidden: []string{"глаза", "зрение", "очки", "врач"}, Fact: "Официальное название специальности окулиста — офтальмолог."},
	{Id: "professions-5", Word: "Фельдшер", Category: CategoryProfessions, Forbidden: []string{"скорая", "помощь", "медик", "село"}, Fact: "Слово «фельдшер» пришло из немецкого и означало полевого лекаря."},
	{Id: "professions-6", Word: "Кардиолог", Category: CategoryProfessions, Forbidden: []string{"сердце", "врач", "давление", "кардиограмма"}, Fact: "Кардиология как отдельная наука сложилась только в XX веке."},
	{Id: "professions-7", Word: "Логопед", Category: CategoryProfessions, Forbidden: []string{"речь", "буква", "произношение", "дети"}, Fact: "Логопеды работают не только с детьми, но и со взрослыми после инсульта."},
	{Id: "professions-8", Word: "Рентгенолог", Category: CategoryProfessions, Forbidden: []string{"снимок", "лучи", "врач", "кости"}, Fact: "Рентгенолог описывает снимки, но сам их обычно не делает — это работа лаборанта."},
	{Id: "professions-9", Word: "Патологоанатом", Category: CategoryProfessions, Forbidden: []string{"вскрытие", "морг", "диагноз", "смерть"}, Fact: "Большая часть работы патологоанатома — исследование тканей живых пациентов."},
	{Id: "professions-10", Word: "Травматолог", Category: CategoryProfessions, Forbidden: []string{"перелом", "гипс", "травма", "кости"}, Fact: "Травматологию и ортопедию в России объединяют в одну специальность."},
	{Id: "professions-11", Word: "Невролог", Category: CategoryProfessions, Forbidden: []string{"нервы", "мозг", "молоточек", "рефлекс"}, Fact: "Знаменитый молоточек нужен неврологу для проверки сухожильных рефлексов."},
	{Id: "professions-12", Word: "Акушер", Category: CategoryProfessions, Forbidden: []string{"роды", "ребёнок", "беременность", "роддом"}, Fact: "Акушерство — одна из древнейших медицинских специальностей."},
}
