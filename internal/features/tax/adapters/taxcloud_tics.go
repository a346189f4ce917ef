package adapter

// bundledTICs is the taxability information code catalog shipped with the
// connector. It backs GetTaxabilityCodes so code listings work even when the
// provider endpoint is unavailable.
var bundledTICs = map[int]string{
	0:     "Uncategorized",
	10000: "Administrative",
	10001: "Shipping",
	10005: "Gift card",
	10010: "Charges by the seller for any services necessary to complete the sale other than delivery and installation",
	10011: "Credit card processing or transaction fee",
	10040: "Installation charges",
	10060: "Value of trade-in",
	10061: "Trade-ins of like-kind property",
	10062: "Trade-ins of non-like kind property",
	10063: "Trade-ins of motor vehicles",
	10064: "Trade-ins of watercraft on watercraft",
	10065: "Trade-ins of watercraft and trailer or outboard motor",
	10070: "Telecommunication nonrecurring charges",
	10080: "Employee discounts that are reimbursed by a third party on sales of motor vehicles.",
	10085: "Manufacturer rebates on motor vehicles.",
	10090: "All coupons issued by a manufacturer, supplier, or distributor of a product(s) that entitle the purchaser to a reduction in sales price and allowed by the seller who is reimbursed by the manufacturer, supplier or distributor.",
	11000: "Handling, crating, packing, preparation for mailing or delivery, and similar charges",
	11010: "Transportation, shipping, postage, and similar charges",
	11011: "Transportation, shipping, postage, and similar charges by USPS",
	11012: "Transportation, shipping, postage, with pick-up option",
	11013: "Transportation, shipping, postage, and similar charges where the charge is marked up.",
	11014: "Inbound freight",
	11015: "Delivery charges involving or related to the sale of electricity, natural gas, or artificial gas by a utility",
	11020: "Handling, crating, packing, preparation for mailing or delivery, and similar charges for direct mail",
	11021: "Transportation, shipping, and similar charges for direct mail",
	11022: "Postage for direct mail",
	11097: "Minnesota Retail Delivery Fee",
	11098: "Colorado Retail Delivery Fees",
	11099: "Postage/Delivery",
	11100: "Direct-mail related",
	11110: "Seller State Responsible",
	11120: "Seller Tribal Responsible",
	20000: "Clothing",
	20010: "Clothing",
	20011: "Diapers - Adult",
	20012: "Diapers - Children",
	20013: "Work Boots",
	20015: "Essential clothing priced below a state specific threshold",
	20020: "Clothing accessories or equipment",
	20021: "Sunglasses - non-prescription",
	20030: "Protective equipment",
	20040: "Sport or recreational equipment",
	20041: "Goggles, snorkels, swim masks",
	20042: "Life jackets",
	20050: "Fur clothing",
	20060: "Energy star qualified product",
	20070: "School supply",
	20080: "School art supply",
	20090: "School instructional material",
	20091: "Graphing calculators",
	20100: "School computer supply",
	20105: "WaterSense Products",
	20106: "Water-Conserving Products",
	20110: "Computers",
	20120: "Prewritten computer software",
	20130: "Clothing, except baby receiving blankets",
	20131: "Baby Receiving Blankets",
	20150: "All Disaster preparedness supplies",
	20160: "Disaster preparedness general supply",
	20161: "Disaster preparedness portable generators and power cords",
	20162: "Portable self-powered light sources",
	20163: "Portable self-powered radios, two-way radios, or weather-band radios",
	20164: "Batteries, including rechargeable batteries",
	20165: "Gas or diesel fuel tanks",
	20166: "Nonelectric food storage coolers",
	20167: "Portable power banks",
	20168: "Hurricane Shutters",
	20170: "Disaster preparedness safety supply",
	20171: "Smoke detectors or smoke alarms",
	20172: "Fire extinguishers",
	20173: "Carbon monoxide detectors",
	20174: "First aid kits",
	20180: "Disaster preparedness food-related supply",
	20181: "Manual can opener",
	20182: "Reusable ice",
	20190: "Disaster preparedness fastening supply",
	20191: "Tarpaulins or other flexible waterproof sheeting",
	20192: "Ground anchor systems",
	20200: "Pet Related Disaster Preparedness Supplies",
	20201: "Wet dog or cat food if sold individually in a can or pouch or the equivalent if sold in a box or case",
	20202: "Dry dog or cat food weighing 50 or fewer pounds",
	20203: "Collapsible or travel-sized food or water bowls for pets",
	20204: "Cat litter pans",
	20205: "Pet waste disposal bags",
	20206: "Hamster or rabbit substrate",
	20207: "Leashes, collars, and muzzles for pets",
	20208: "Pet pads",
	20209: "Cat litter weighing 25 or fewer pounds",
	20210: "Pet beds",
	20211: "Portable pet kennels or pet carriers",
	20300: "Work gloves",
	20301: "Safety glasses",
	20302: "Protective coveralls",
	20303: "Hearing protection items",
	20304: "Tool belts",
	20305: "Hard hats and other head protection",
	20306: "High-visibility safety vests",
	21000: "Other Sales Tax Holiday Items",
	21001: "Energy Star dishwasher",
	21002: "Energy Star clothes washer",
	21003: "Energy Star clothes dryer",
	21004: "Energy Star air conditioner",
	21005: "Energy Star ceiling fan",
	21006: "Energy Star light bulb",
	21007: "Energy Star dehumidifier",
	21008: "Energy Star programmable thermostat",
	21009: "Energy Star refrigerator",
	21010: "Energy Star freezer",
	21011: "Energy Star water heater - not solar",
	21012: "Energy Star water heater - solar",
	21013: "Energy Star conventional ovens, ranges & stoves",
	21014: "Energy Star trash compactors",
	21015: "Energy Star furnaces",
	21016: "Energy Star heat pump",
	21017: "Energy Star boiler",
	21018: "WaterSense bathroom sink",
	21019: "WaterSense faucet accessories",
	21020: "WaterSense showerhead",
	21021: "WaterSense toilet",
	21022: "WaterSense urinal",
	21023: "WaterSense landscape irrigation controllers",
	21100: "Impact-Resistant Doors, Garage Doors, and Windows",
	21200: "Industry textbooks and code books",
	21201: "Power tool batteries",
	21202: "Handheld pipe cutters",
	21203: "Drain opening tools",
	21204: "Plumbing inspection equipment",
	21205: "Ladders",
	21206: "Power tools",
	21207: "Tool boxes for vehicles",
	21208: "Hand tools",
	21209: "Tool boxes",
	21210: "Shovels and rakes",
	21211: "LED flashlights",
	21212: "Electrical voltage and testing equipment",
	21213: "Shop lights",
	21214: "Duffle bags or tote bags",
	21215: "Gas-powered chainsaws",
	21216: "Chainsaw accessories",
	21300: "Fishing supplies",
	21301: "Bait or fishing tackle",
	21302: "Tackle boxes or bags",
	21303: "Fishing rods",
	21304: "Fishing reels",
	21305: "Fishing rod and reel set",
	21310: "Camping supplies",
	21311: "Camping lanterns",
	21312: "Flashlights",
	21313: "Sleeping bags",
	21314: "Portable hammocks",
	21315: "Camping Stoves",
	21316: "Collapsible camping chairs",
	21317: "Tents",
	21320: "Boating and water activity supplies",
	21321: "Inflatable pool tubes, pool floats; inflatable chairs, pool toys",
	21322: "Safety flares",
	21324: "Oars, paddles",
	21325: "Kneeboards, wakeboards, water skis, and inflatable tubes or floats capable of being towed",
	21326: "Paddleboards, surfboards",
	21327: "Canoes, kayaks",
	21330: "Residential Pool Supplies",
	21331: "Individual residential pool & spa replacement parts, nets, filters, lights, covers",
	21332: "Residential pool & spa chemicals purchased by an individual",
	21350: "General outdoor equipment and supplies",
	21351: "Insect repellant",
	21352: "Water bottles",
	21353: "Hydration packs",
	21354: "Binoculars",
	21355: "Outdoor gas or charcoal grills",
	21356: "Bicycles",
	21357: "Electric scooters weighing less than 75 pounds",
	22000: "Bed & bath products",
	30000: "Computers, Electronics, and Appliances",
	30015: "Non-prewritten (custom) computer software",
	30025: "Non-prewritten (custom) computer software delivered electronically",
	30035: "Non-prewritten (custom) computer software delivered via load and leave Mandatory computer software maintenance contracts",
	30040: "Prewritten computer software",
	30050: "Prewritten computer software delivered electronically",
	30060: "Prewritten computer software delivered via load and leave",
	30070: "Remotely Accessed Prewritten Software",
	30100: "Computer",
	30101: "Bulk sales of computers",
	30200: "Mandatory computer software maintenance contracts with respect to prewritten computer software",
	30210: "Mandatory computer software maintenance contracts with respect to prewritten computer software which is delivered electronically",
	30220: "Mandatory computer software maintenance contracts with respect to prewritten computer software which is delivered via load and leave",
	30230: "Mandatory computer software maintenance contracts with respect to non-prewritten (custom) computer software",
	30240: "Mandatory computer software maintenance contracts with respect to non-prewritten (custom) software which is delivered electronically",
	30250: "Mandatory computer software maintenance contracts with respect to non-prewritten (custom) software which is delivered via load and leave",
	30300: "Optional computer software maintenance contracts with respect to prewritten computer software that only provide updates or upgrades with respect to the software",
	30310: "Optional computer software maintenance contracts with respect to prewritten computer software that only provide updates or upgrades delivered electronically with respect to the software",
	30320: "Optional computer software maintenance contracts with respect to prewritten computer software that only provide updates or upgrades delivered via load and leave with respect to the software",
	30330: "Optional computer software maintenance contracts with respect to non-prewritten (custom) computer software that only provide updates or upgrades with respect to the software",
	30340: "Optional computer software maintenance contracts with respect to non-prewritten (custom) computer software that only provide updates or upgrades delivered electronically with respect to the software",
	30350: "Optional computer software maintenance contracts with respect to non-prewritten (custom) computer software that only provide updates or upgrades delivered via load and leave with respect to the software",
	30360: "Optional computer software maintenance contracts with respect to non-prewritten (custom) computer software that only provide support services to the software",
	30370: "Optional computer software maintenance contracts with respect to non-prewritten (custom) computer software that provide updates or upgrades and support services to the softwareAppendix E",
	30380: "Optional computer software maintenance contracts with respect to non-prewritten (custom) computer software that provide updates or upgrades delivered electronically and support services to the software",
	30390: "Optional computer software maintenance contracts with respect to non-prewritten (custom) computer software provide updates or upgrades delivered via load and leave and support services to the software",
	30400: "Optional computer software maintenance contracts with respect to prewritten computer software that provide updates or upgrades and support services to the software",
	30410: "Optional computer software maintenance contracts with respect to prewritten computer software that provide updates and upgrades delivered electronically and support services to the software",
	30420: "Optional computer software maintenance contracts with respect to prewritten computer software that provide updates and upgrades delivered via load and leave and support services to the software",
	30430: "Optional computer software maintenance contracts with respect to prewritten computer software that only provide support services to the software",
	31000: "Products Transferred Electronically",
	31035: "Audio-Visual Works",
	31040: "Digital Audio Visual Works (with rights for permanent use)",
	31050: "Digital Audio Visual Works (with rights of less than permanent use)",
	31060: "Digital Audio Visual Works (with rights conditioned on continued payments)",
	31065: "Digital Audio Visual Works sold to users other than the end user",
	31069: "Audio Works",
	31070: "Digital Audio Works (with rights for permanent use)",
	31080: "Digital Audio Works (with rights of less than permanent use)",
	31090: "Digital Audio Works (with rights conditioned on continued payments)",
	31095: "Digital Audio Works sold to users other than the end user",
	31099: "Digital Books",
	31100: "Digital Books (with rights for permanent use)",
	31110: "Digital Books (with rights of less than permanent use)",
	31120: "Digital Books (with rights conditioned on continued payments)",
	31121: "Subscriptions to products transferred electronically",
	31125: "Digital Books sold to users other than the end user",
	32000: "Digital textbooks",
	40000: "Foods and Beverages",
	40010: "Candy",
	40015: "Dried or partially dried fruit",
	40020: "Dietary Supplements",
	40030: "Food and food ingredients excluding alcoholic beverages and tobacco",
	40031: "Seeds and plants for use in gardens to produce food for the personal consumption of a household",
	40040: "Food sold through vending machines",
	40050: "Soft Drinks",
	40060: "Bottled Water",
	40080: "Gift basket with only food, or only food and candy, candy is 50% or less but greater than 10%",
	40081: "Gift basket with only food, or only food and candy, candy is 10% or less",
	40082: "Gift basket with only food, or only food and candy, candy is more than 50%",
	40083: "Gift basket with food, candy, and non-food items, food is less than 50%, candy is less than 90%, non-food items are greater than 10% but less than 50%",
	40084: "Gift basket with food, candy, and non-food items, food is less than 50%, candy is between 1-99%, non-food items are 10% or less",
	40085: "Gift basket with food, candy, and non-food items, food is greater than 75%, candy is less than 25%, non-food items are 10% or less",
	40086: "Gift basket with food, candy, and non-food items, food is 90% or more, candy is less than 10%, non-food items are less than 10%",
	40087: "Gift basket with popcorn and candy, popcorn is 50% or more but less than 90%",
	40088: "Gift basket with popcorn or candy, candy is 50% or more",
	40089: "Gift basket with food and non-food items, food is 90% or more",
	40090: "Gift basket with food and non-food items, food is more than 50% but less than 90%",
	41000: "Prepared Food",
	41010: "Food sold without eating utensils provided by the seller whose primary NAICS classification is manufacturing in sector 311, except subsector 3118 (bakeries)",
	41020: "Food sold without eating utensils provided by the seller in an unheated state by weight or volume as a single item",
	41025: "Deli Meats & Seafood",
	41030: "Bakery items sold without eating utensils provided by the seller, including bread, rolls, buns, biscuits, bagels, croissants, pastries, donuts, Danish, cakes, tortes, pies, tarts, muffins, bars, cookies, tortillas",
	41040: "Prpared uncooked food",
	41041: "Prepared food that can only be consumed off-premises",
	41045: "Bottled water, candy, dietary supplements, soft drinks and items considered prepared food when utensils are made availabe to the customer",
	50000: "Medical Related",
	51000: "Drugs/Pharmaceuticals",
	51001: "Human use",
	51002: "Animal/Veterinary use",
	51010: "Drugs for human use without a prescription",
	51020: "Drugs, other than over-the-counter drugs, for human use with a prescription",
	51030: "Drugs for animal use without a prescription",
	51040: "Drugs for animal use with a prescription",
	51050: "Insulin for human use without a prescription",
	51055: "Insulin",
	51060: "Insulin for human use with a prescription",
	51070: "Insulin for animal use without a prescription",
	51075: "Insulin",
	51080: "Insulin for animal use with a prescription",
	51090: "Medical oxygen for human use without a prescription",
	51095: "Oxygen",
	51100: "Medical oxygen for human use with a prescription",
	51110: "Medical oxygen for animal use without a prescription",
	51115: "Oxygen",
	51120: "Medical oxygen for animal use with a prescription",
	51130: "Over-the-counter drugs for human use without a prescription",
	51135: "Over-the-counter",
	51140: "Over-the-counter drugs for human use with a prescription",
	51150: "Over-the-counter drugs for animal use without a prescription",
	51155: "Over-the-counter",
	51160: "Over-the-counter drugs for animal use with a prescription",
	51170: "Grooming and hygiene products for human use",
	51171: "Grooming and hygiene products for human use",
	51172: "Grooming and hygiene products for human use",
	51173: "Hand soap, bar soap, and body wash",
	51174: "Sunscreen and sunblock",
	51175: "Menstrual Discharge Collection Devices, also known as Feminine Hygiene Products",
	51176: "Period underwear",
	51177: "Menstrual discharge collection devices that are clothing",
	51180: "Grooming and hygiene products for animal use",
	51190: "Drugs for human use to hospitals",
	51195: "Drugs for human use to other medical facilities",
	51200: "Prescription drugs for human use to hospitals",
	51205: "Prescription drugs for human use to other medical facilities",
	51210: "Drugs for animal use to veterinary hospitals and other animal medical facilities",
	51220: "Prescription drugs for animal use to hospitals and other animal medical facilities",
	51240: "Free samples of drugs for human use",
	51245: "Free Samples",
	51250: "Free samples of prescription drugs for human use",
	51260: "Free samples of drugs for animal use",
	51265: "Free Samples",
	51270: "Free samples of prescription drugs for animal use",
	52000: "Durable medical equipment",
	52005: "for Commercial/Industrial/Civic use",
	52010: "Durable medical equipment without a prescription",
	52020: "Durable medical equipment with a prescription",
	52030: "Durable medical equipment with a prescription paid for by Medicare",
	52040: "Durable medical equipment with a prescription reimbursed by Medicare",
	52050: "Durable medical equipment with a prescription paid for by MedicaidAppendix E",
	52060: "Durable medical equipment with a prescription reimbursed by Medicaid",
	52065: "for home use",
	52070: "Durable medical equipment for home use without a prescription",
	52080: "Durable medical equipment for home use with a prescription",
	52090: "Durable medical equipment for home use with a prescription paid for by Medicare",
	52100: "Durable medical equipment for home use with a prescription reimbursed by Medicare",
	52110: "Durable medical equipment for home use with a prescription paid for by Medicaid",
	52120: "Durable medical equipment for home use with a prescription reimbursed by Medicaid",
	52125: "Oxygen delivery equipment",
	52128: "for Commercial/Industrial/Civic use",
	52130: "Oxygen delivery equipment without a prescription",
	52140: "Oxygen delivery equipment with a prescription",
	52150: "Oxygen delivery equipment with a prescription paid for by Medicare",
	52160: "Oxygen delivery equipment with a prescription reimbursed by Medicare",
	52170: "Oxygen delivery equipment with a prescription paid for by Medicaid",
	52180: "Oxygen delivery equipment with a prescription reimbursed by Medicaid",
	52185: "for home use",
	52190: "Oxygen delivery equipment for home use without a prescription",
	52200: "Oxygen delivery equipment for home use with a prescription",
	52210: "Oxygen delivery equipment with a prescription for home use paid for by Medicare",
	52220: "Oxygen delivery equipment with a prescription for home use reimbursed by Medicare",
	52230: "Oxygen delivery equipment with a prescription for home use paid for by Medicaid",
	52240: "Oxygen delivery equipment with a prescription for home use reimbursed by Medicaid",
	52245: "Kidney dialysis equipment",
	52248: "for Commercial/Industrial/Civic use",
	52250: "Kidney dialysis equipment without a prescription",
	52260: "Kidney dialysis equipment with a prescription",
	52270: "Kidney dialysis equipment with a prescription paid for by Medicare",
	52280: "Kidney dialysis equipment with a prescription reimbursed by Medicare",
	52290: "Kidney dialysis equipment with a prescription paid for by Medicaid",
	52300: "Kidney dialysis equipment with a prescription reimbursed by Medicaid",
	52305: "for home use",
	52310: "Kidney dialysis equipment for home use without a prescription",
	52320: "Kidney dialysis equipment for home use with a prescription",
	52330: "Kidney dialysis equipment for home use with a prescription paid for by Medicare",
	52340: "Kidney dialysis equipment for home use with a prescription reimbursed by Medicare",
	52350: "Kidney dialysis equipment for home use with a prescription paid for by Medicaid",
	52360: "Kidney dialysis equipment for home use with a prescription reimbursed by Medicaid",
	52365: "Enteral feeding systems",
	52368: "for Commercial/Industrial/Civic use",
	52370: "Enteral feeding systems without a prescription",
	52380: "Enteral feeding systems with a prescription",
	52390: "Enteral feeding systems with a prescription paid for by Medicare",
	52400: "Enteral feeding systems with a prescription reimbursed by Medicare",
	52410: "Enteral feeding systems with a prescription paid for by Medicaid",
	52420: "Enteral feeding systems with a prescription reimbursed by Medicaid",
	52425: "for home use",
	52430: "Enteral feeding systems for home use without a prescription",
	52440: "Enteral feeding systems for home use with a prescription",
	52450: "Enteral feeding systems for home use with a prescription paid for by Medicare",
	52460: "Enteral feeding systems for home use with a prescription reimbursed by Medicare",
	52470: "Enteral feeding systems for home use with a prescription paid for by Medicaid",
	52480: "Enteral feeding systems for home use with a prescription reimbursed by Medicaid",
	52490: "Repair and replacement parts for durable medical equipment which are for single patient use",
	52500: "Breast pump, not for home use, without a prescription",
	52501: "Breast pump, not for home use, with a prescription",
	52502: "Breast pump, not for home use, with a prescription paid by Medicare",
	52503: "Breast pump, not for home use, with a prescription reimbursed by Medicare",
	52504: "Breast pump, not for home use, with a prescription paid by Medicaid",
	52505: "Breast pump, not for home use, with a prescription reimbursed by Medicaid",
	52506: "Breast pump, for home use, without a prescription",
	52507: "Breast pump, for home use, with a prescription",
	52508: "Breast pump, for home use, with a prescription paid for by Medicare",
	52509: "Breast pump, for home use, with a prescription reimbursed by Medicare",
	52510: "Breast pump, for home use, with a prescription paid for by Medicaid",
	52511: "Breast pump, for home use, with a prescription reimbursed by Medicaid",
	52512: "Repair and replacement parts for breast pump which are for single patient use",
	52515: "Breast pump collection and storage supplies, not for home use, without a prescription",
	52516: "Breast pump collection and storage supplies, not for home use, with a prescription",
	52517: "Breast pump collection and storage supplies, not for home use, with a prescription, paid by Medicare",
	52518: "Breast pump collection and storage supplies, not for home use, with a prescription, reimbursed by Medicare",
	52519: "Breast pump collection and storage supplies, not for home use, with a prescription, paid for by Medicaid",
	52520: "Breast pump collection and storage supplies, not for home use, with a prescription, reimbursed by Medicaid",
	52521: "Breast pump collection and storage supplies, for home use, without a prescription",
	52522: "Breast pump collection and storage supplies, for home use, with a prescription",
	52523: "Breast pump collection and storage supplies, for home use, with a prescription, paid for by Medicare",
	52524: "Breast pump collection and storage supplies, for home use, with a prescription, reimbursed by Medicare",
	52525: "Breast pump collection and storage supplies, for home use, with a prescription, paid for by Medicaid",
	52526: "Breast pump collection and storage supplies, for home use, with a prescription, reimbursed by Medicaid",
	52530: "Breast pump kit, not for home use, without a prescription",
	52531: "Breast pump kit, not for home use, with a prescription",
	52532: "Breast pump kit, not for home use, with a prescription paid for by Medicare",
	52534: "Breast pump kit, not for home use, with a prescription reimbursed by Medicare",
	52535: "Breast pump kit, not for home use, with a prescription paid for by Medicaid",
	52536: "Breast pump kit, not for home use, with a prescription reimbursed by Medicaid",
	52537: "Breast pump kit, for home use, without a prescription",
	52538: "Breast pump kit, for home use, with a prescription",
	52539: "Breast pump kit, for home use, with a prescription paid for by Medicare",
	52540: "Breast pump kit, for home use, with a prescription reimbursed by Medicare",
	52541: "Breast pump kit, for home use, with a prescription paid for by Medicaid",
	52542: "Breast pump kit, for home use, with a prescription reimbursed by Medicaid",
	52543: "Repair and replacement parts for breast pump kit which are for single patient use",
	53000: "Mobility enhancing equipment",
	53010: "Mobility enhancing equipment without a prescription",
	53020: "Mobility enhancing equipment with a prescriptionAppendix E",
	53030: "Mobility enhancing equipment with a prescription paid for by Medicare",
	53040: "Mobility enhancing equipment with a prescription reimbursed by Medicare",
	53050: "Mobility enhancing equipment with a prescription paid for by Medicaid",
	53060: "Mobility enhancing equipment with a prescription reimbursed by Medicaid",
	54000: "Prosthetic devices",
	54010: "Prosthetic devices without a prescription",
	54020: "Prosthetic devices with a prescription",
	54030: "Prosthetic devices paid with a prescription for by Medicare",
	54040: "Prosthetic devices with a prescription reimbursed by Medicare",
	54050: "Prosthetic devices with a prescription paid for by Medicaid",
	54060: "Prosthetic devices with a prescription reimbursed by Medicaid",
	54065: "Corrective eyeglasses",
	54070: "Corrective eyeglasses without a prescription",
	54080: "Corrective eyeglasses with a prescription",
	54090: "Corrective eyeglasses with a prescription paid for by Medicare",
	54100: "Corrective eyeglasses with a prescription reimbursed by Medicare",
	54110: "Corrective eyeglasses with a prescription paid for by Medicaid",
	54120: "Corrective eyeglasses with a prescription reimbursed by Medicaid",
	54125: "Contact lenses",
	54130: "Contact lenses without a prescription",
	54140: "Contact lenses with a prescription",
	54150: "Contact lenses with a prescription paid for by Medicare",
	54160: "Contact lenses with a prescription reimbursed by Medicare",
	54170: "Contact lenses with a prescription paid for by Medicaid",
	54180: "Contact lenses with a prescription reimbursed by Medicaid",
	54185: "Hearing aids",
	54190: "Hearing aids without a prescription",
	54200: "Hearing aids with a prescription",
	54210: "Hearing aids with a prescription paid for by Medicare",
	54220: "Hearing aids with a prescription reimbursed by Medicare",
	54230: "Hearing aids with a prescription paid for by Medicaid",
	54240: "Hearing aids with a prescription reimbursed by Medicaid",
	54245: "Dental prosthesis",
	54250: "Dental prosthesis without a prescription",
	54260: "Dental prosthesis with a prescription",
	54270: "Dental prosthesis with a prescription paid for by Medicare",
	54280: "Dental prosthesis with a prescription reimbursed by Medicare",
	54290: "Dental prosthesis with a prescription paid for by Medicaid",
	54300: "Dental prosthesis with a prescription reimbursed by Medicaid",
	60000: "Telecommunications service",
	60010: "Ancillary Services",
	60020: "Conference bridging service",
	60030: "Detailed telecommunications billing service",
	60040: "Directory assistance",
	60050: "Vertical service",
	60060: "Voice mail service",
	61000: "Intrastate Telecommunications Service",
	61010: "Interstate Telecommunications ServiceAppendix E",
	61020: "International Telecommunications Service",
	61030: "International 800 service",
	61040: "International 900 service",
	61050: "International fixed wireless service",
	61060: "International mobile wireless service",
	61070: "International paging service",
	61080: "International prepaid calling service",
	61090: "International prepaid wireless calling service",
	61100: "International private communications service",
	61110: "International value-added non-voice data service",
	61120: "International residential telecommunications service",
	61130: "Interstate 800 service",
	61140: "Interstate 900 service",
	61150: "Interstate fixed wireless service",
	61160: "Interstate mobile wireless service",
	61170: "Interstate paging service",
	61180: "Interstate prepaid calling service",
	61190: "Interstate prepaid wireless calling service",
	61200: "Interstate private communications service",
	61210: "Interstate value-added non-voice data service",
	61220: "Interstate residential telecommunications service",
	61230: "Intrastate 800 service",
	61240: "Intrastate 900 service",
	61250: "Intrastate fixed wireless service",
	61260: "Intrastate mobile wireless service",
	61270: "Intrastate paging service",
	61280: "Intrastate prepaid calling service",
	61290: "Intrastate prepaid wireless calling service",
	61300: "Intrastate private communications service",
	61310: "Intrastate value-added non-voice data service",
	61320: "Intrastate residential telecommunications service",
	61325: "Paging service",
	61330: "Coin-operated telephone service",
	61340: "Pay telephone service",
	61350: "Local Service as defined by state",
	70010: "Firearm safety device",
	70011: "Firearm storage device except items 70012, 70013 and 70014",
	70012: "Glass-faced cabinets that are designed to display the firearm.",
	70013: "Containers or other forms of storage that are designed to display the firearm",
	70014: "Any other enclosure that is marketed to store a firearm.",
	90010: "Meal Replacement",
	90011: "Vitamins",
	90012: "Unprepared Food",
	90020: "F.O.B. Origin Shipping",
	90021: "F.O.B. Destination Shipping",
	90022: "Shipping (optional customer pickup)",
	90041: "Installation Services (deprecated)",
	90100: "Flags and Banners",
	90101: "State and province flags",
	90102: "Special causes flags",
	90103: "United States flag",
	90104: "Connecticut flag",
	90105: "Florida flag",
	90106: "Maryland flag",
	90107: "Massachusetts flag",
	90108: "New Jersey flag",
	90109: "New York flag",
	90110: "Pennsylvania flag",
	90111: "Rhode Island flag",
	90112: "Tennessee flag",
	90113: "Vermont flag",
	90114: "Wisconsin flag",
	90115: "Virginia flag",
	90116: "West Virginia flag",
	90117: "POW-MIA",
	90118: "Novelty and Organizational Flags",
	90119: "National flags",
	90200: "Medical Records",
	90300: "Alcoholic Beverages",
	90400: "Beverages",
	90401: "Water",
	90403: "Emergency Water",
	90404: "Flavored Water",
	90405: "Milk",
	90406: "Juice",
	90407: "Fruit Drink",
	90408: "Coffee",
	90409: "Tea",
	90410: "Breath Mints",
	90411: "Energy Shots",
	90412: "CBD (cannabidiol) Products (Ingestible)",
	90413: "CBD (cannabidiol) Products (Noningestible)",
	90414: "Electrolyte or rehydration beverage (DOES NOT contain milk or milk products ingredients)",
	90415: "Electrolyte or rehydration beverage (contains milk or milk product ingredients)",
	90416: "Electrolyte or rehydration powder (DOES NOT contain milk product ingredients)",
	90417: "Electrolyte or rehydration powder (contains milk product ingredients)",
	90500: "Firearms and Hunting",
	90501: "Excercise Clothing",
	90502: "Gun Safe",
	90503: "Gun Safety Devices Permanent",
	90504: "Gun Safety Devices Temporary",
	90505: "Firearms",
	90506: "Ammunition",
	90600: "Fuel",
	90601: "Dyed diesel fuel (off-road use)",
	90700: "Agricultural and Farming",
	90701: "Honey bees and their input and byproducts",
	91000: "Services",
	91001: "Credit Reports",
	91010: "Help Desk Support",
	91011: "Computer Repair",
	91020: "Voluntary Gratuity",
	91021: "Mandatory Gratuity (charge does not exceed 20% of sales price)",
	91022: "Mandatory Gratuity (charge exceeds 20% of sales price)",
	91030: "Donations",
	91040: "Graphic Design Service",
	91041: "Graphic Design Review Service",
	91050: "Alarm Monitoring",
	91051: "Alarm Repair Service",
	91060: "Merchant Operated",
	91061: "Equipment Rentals",
	91062: "Customer Operated",
	91063: "Rental Parts or Supplies",
	91064: "Sports or Amusement",
	91065: "For Tax Exempt Project",
	91070: "Membership fees",
	91071: "Youth Club",
	91072: "Health Club",
	91073: "Social or Civic Organization",
	91074: "Retail Club",
	91080: "Admission fees",
	91081: "Spectator Admission fees",
	91082: "Participant Admission fees",
	91083: "Cultural Admission fees",
	91090: "Service Labor for Repairs of Tangible Personal Property",
	91100: "Waste collection and removal services",
	91110: "Gift wrapping services, optional",
	91120: "Medical Services",
	91121: "Lab Testing Services",
	91200: "Pet Services",
	91201: "Pet Sitting Services",
	92001: "Handbags",
	92002: "Handkerchiefs",
	92003: "Belt buckles",
	92004: "Clothing components",
	92005: "Athletic shoes",
	92006: "Athletic supporters",
	92007: "Bicycle helmet",
	92008: "Snow Suits",
	92009: "Imitation fur clothing",
	92010: "Specialty clothing",
	92011: "Formal wear",
	92012: "Swim suits",
	92013: "Scarves",
	92014: "Costumes",
	92015: "Athletic clothing",
	92016: "Clothing Rental",
	92017: "Religious Materials and Texts",
	92018: "Religious Materials and Texts",
	92019: "Feminine Hygiene Products",
	92020: "Other Helmets",
	92021: "Hunting Clothing",
	92022: "Sewing Materials",
	92023: "Infant Supplies",
	92024: "Disposable Medical Supplies",
	92025: "Disability-Related Supplies",
	92026: "Disposable Veterinary Supplies",
	92030: "Religious Products",
	92031: "Religious Materials and Texts",
	92032: "Altar paraphernalia, sacramental chalices, and similar church supplies and equipment",
	92050: "Infant and Child Products and Supplies",
	92051: "Infant Supplies",
	92052: "Baby cribs",
	92053: "Baby playpens",
	92054: "Baby strollers",
	92055: "Child restraint devices and booster seats",
	92056: "Child bicycle carriers",
	92057: "Baby safety gates, monitors, cabinet locks and latches, socket covers",
	92058: "Baby exercisers, jumpers, bouncer seats, and swings",
	92059: "Baby changing tables and changing pads",
	92060: "Baby Wipes",
	92061: "Diaper Cream",
	92062: "Baby and toddler clothing",
	92090: "College Textbooks",
	92095: "Book - Children",
	92100: "Jewelry",
	92500: "Coins and Commemoratives",
	92501: "Cremation Urns",
	92502: "Caskets and Vaults",
	92503: "Paper Money",
	92504: "Collectible Paper Money",
	92505: "Collectible Stamps",
	92506: "Bullion",
	92507: "Coins",
	92508: "Coins that are legal tender of United States.",
	93011: "Computer Peripheral",
	93012: "Gaming Peripherals",
	93013: "Personal Digital Assistants (PDAs)",
	93015: "Printers",
	93016: "Printer Supplies",
	93017: "Business Supplies and Equipment",
	93018: "Optional Equipment Protection Plan",
	93101: "Other/Miscellaneous",
	93102: "Digital Games",
	93103: "Downloadable Games",
	93104: "Online Games",
	93105: "Exempt Entity Works",
	93110: "News and Information",
	93111: "Newspapers",
	93112: "Single Issue",
	93113: "Subscription",
	93115: "Periodicals",
	93116: "Single Issue",
	93117: "Subscription",
	93119: "Web Site (subscriptions-based)",
	93200: "Remote Data Processing Software",
	93201: "Remote Data Processing Service",
	93202: "Infrastructure as a Service",
	93203: "Remote Storage Service",
	93204: "Remote CPU Service",
	93205: "Remotely Accessed Software for Business use",
	93206: "Remotely Accessed Software for personal use",
	94000: "Construction Materials",
	94001: "General Materials",
	94002: "Lumber",
	94003: "Engineered Materials",
	94030: "Screen Printing Equipment and Supplies",
	94031: "INK",
	94032: "INK ADDITIVES",
	94033: "PELLONS",
	94034: "SCORCH OUT",
	94035: "SPOT REMOVER",
	94036: "TEST TUBES",
	94037: "ALL WIPES",
	94038: "Other Screen Printing Equipment and Supplies",
	95101: "Common Household Remedies",
	96100: "Common Household Supplies",
	96101: "Disposable Household Paper Products",
	96102: "Toilet Tissue",
	96103: "Laundry detergent and supplies: powder, liquid, or pod detergent; fabric softener; dryer sheets; stain removers; bleach",
	96104: "Dish soap and detergents, including powder, liquid, or pod detergents or rinse agents that can be used in dishwashers",
	96105: "Cleaning or disinfecting wipes and sprays, hand sanitizer",
	96106: "Trash bags",
	96130: "Shampoo (non-medicated)",
	96131: "Shampoo (medicated)",
	96132: "Toothpaste",
	96133: "Tootbrush",
	96134: "Mouthwash",
	96135: "Antiperspirants",
	99991: "Marketplace Sales",
	99992: "No Tax Calculation - File Returns Only",
	99993: "Marketplace Facilitator Fees",
	99994: "Core Charges",
	99995: "Tire Fees",
	99996: "CA eWaste Fees",
	99997: "Specialized",
	99998: "Use Tax Reporting",
	99999: "In-Store Sales",
}
