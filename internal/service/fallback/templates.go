package fallback

// definitionArticle is the structured e-waste overview served for
// "what is e-waste" style queries.
const definitionArticle = `**Understanding E-Waste: A Comprehensive Overview**

E-waste (electronic waste) encompasses all discarded electronic and electrical equipment, whether functional or not. This rapidly growing waste stream presents both environmental challenges and economic opportunities in our digital age.

**Key Categories of E-Waste:**
• Temperature Exchange Equipment
  - Refrigerators, freezers, air conditioners
  - Contains harmful refrigerants and insulation
• Screens and Monitors
  - TVs, monitors, laptops, tablets
  - Often contain mercury and lead
• Large Equipment
  - Washing machines, electric stoves, large printing machines
  - Mixed materials including metals and plastics
• Small Equipment
  - Vacuum cleaners, microwaves, electronic toys
  - Various valuable and hazardous components
• Small IT Equipment
  - Smartphones, GPS devices, calculators, routers
  - Contains precious metals and rare earth elements
• IT and Telecom Equipment
  - PCs, printers, phones, servers
  - High concentration of valuable materials

**Composition and Value:**
• Precious Metals: Gold, silver, platinum, palladium
• Base Metals: Copper, aluminum, iron, tin
• Rare Earth Elements: Neodymium, dysprosium, terbium
• Hazardous Materials: Lead, mercury, cadmium, brominated flame retardants

**Global Impact:**
• Annual Generation: Over 50 million metric tons globally
• Economic Value: Worth over $62.5 billion in raw materials
• Recycling Rate: Less than 20% properly recycled worldwide
• Growth Rate: Increasing by 3-4% annually

**Environmental and Health Implications:**
1. Toxic Pollution
   - Soil contamination from heavy metals
   - Water table pollution affecting ecosystems
   - Air pollution from improper burning
2. Resource Depletion
   - Loss of valuable materials
   - Increased mining pressure
3. Climate Impact
   - Greenhouse gas emissions from production
   - Energy waste from improper disposal

**Modern Management Approaches:**
1. Circular Economy Integration
   - Design for disassembly
   - Modular construction
   - Material recovery systems
2. Smart Recycling
   - Automated sorting technologies
   - Advanced material recovery
   - Urban mining initiatives
3. Extended Producer Responsibility
   - Take-back programs
   - Eco-design requirements
   - End-of-life management

This comprehensive understanding of e-waste is crucial for developing effective management strategies and promoting sustainable electronics consumption.`

// processTemplate answers how/process/method queries.
const processTemplate = `**The E-Waste Recycling Process**

Responsible e-waste processing follows a well-established chain designed to recover value and contain hazards:

**1. Collection and Transportation**
• Drop-off points, retailer take-back programs, municipal collection events
• Certified haulers with chain-of-custody documentation
• Secure handling for data-bearing devices

**2. Sorting and Triage**
• Separation by device category (screens, batteries, large appliances, IT equipment)
• Identification of reusable and refurbishable units
• Isolation of hazardous components (batteries, mercury lamps, refrigerants)

**3. Data Destruction**
• Certified wiping or physical destruction of storage media
• Audit trails for corporate and regulatory compliance

**4. Dismantling and Pre-Processing**
• Manual removal of hazardous parts and high-value boards
• Mechanical shredding of remaining material
• Magnetic, eddy-current, and optical separation into material streams

**5. Material Recovery**
• Smelting and refining of ferrous and non-ferrous metals
• Precious metal recovery from circuit boards (gold, silver, palladium)
• Plastics regranulation where polymer streams are clean enough

**6. Responsible Disposal**
• Stabilization and licensed landfilling of non-recoverable residues
• Certificates of recycling for upstream accountability

**How You Can Participate:**
• Use certified recyclers (look for R2 or e-Stewards certification)
• Wipe personal data before handing devices over
• Keep batteries separate; they cause most facility fires
• Prefer repair and donation before recycling`

// impactTemplate answers why/impact/effect queries.
const impactTemplate = `**Why E-Waste Management Matters: Impacts and Effects**

**Environmental Impacts of Improper Disposal:**
• Heavy metals (lead, mercury, cadmium) leach into soil and groundwater
• Open burning of cables and boards releases dioxins and furans
• Refrigerants from cooling equipment are potent greenhouse gases
• A single CRT monitor can contain several pounds of lead

**Human Health Effects:**
• Neurological damage from lead and mercury exposure, especially in children
• Respiratory illness in communities near informal processing sites
• Contaminated food chains where e-waste is processed near farmland
• Occupational hazards for unprotected informal-sector workers

**Resource and Economic Effects:**
• Over $60 billion of recoverable raw materials are discarded annually
• Mining virgin ore consumes far more energy than recovering metals from boards
• Rare earth elements critical to new electronics are lost to landfill
• Proper recycling supports a growing formal employment sector

**The Positive Impact of Doing It Right:**
• One million recycled laptops save energy equivalent to thousands of homes
• Recovered gold, copper, and aluminum directly offset mining demand
• Circular-economy practices reduce manufacturing emissions
• Safe handling protects the most vulnerable communities

Every properly recycled device is a measurable reduction in pollution, resource depletion, and health risk.`

// regulationTemplate answers regulation/law/compliance queries.
const regulationTemplate = `**E-Waste Regulation and Compliance Overview**

**International Frameworks:**
• Basel Convention: controls transboundary movement of hazardous waste, including most e-waste exports
• Basel Ban Amendment: prohibits hazardous waste exports from OECD to non-OECD countries
• StEP (Solving the E-Waste Problem): UN-backed coordination initiative

**Regional and National Legislation:**
• EU WEEE Directive: collection, recovery, and recycling targets for member states
• EU RoHS Directive: restricts hazardous substances in new electronics
• US: no federal e-waste law; 25+ states have their own landfill bans and producer-responsibility rules
• India E-Waste (Management) Rules: extended producer responsibility with collection targets
• China's import restrictions: ended much of the informal import-processing trade

**Key Compliance Concepts:**
• Extended Producer Responsibility (EPR): manufacturers fund end-of-life management
• Take-back obligations: retailers and producers must accept returned equipment
• Certification schemes: R2 and e-Stewards for recyclers, ISO 14001 for management systems
• Data protection statutes: secure destruction duties under GDPR and similar laws

**For Businesses:**
• Maintain chain-of-custody documentation for every disposal batch
• Use certified downstream vendors and audit them periodically
• Track applicable state/national registration and reporting deadlines

Regulations vary significantly by jurisdiction. Always verify the rules for your specific region before shipping or disposing of electronic equipment.`

// generalMenu is the catch-all topic menu.
const generalMenu = `I understand you have a question about e-waste management. To provide you with the most accurate and helpful information, could you please specify your interest in:

**Technical Aspects:**
• Material composition and recovery
• Recycling technologies and processes
• Equipment types and classifications
• Innovation in e-waste processing

**Environmental Concerns:**
• Ecological impact assessment
• Contamination prevention
• Resource conservation
• Climate change implications

**Management Strategies:**
• Collection and transportation
• Processing and recovery
• Final disposal methods
• Urban mining techniques

**Regulatory Framework:**
• International conventions
• National legislation
• Industry standards
• Compliance requirements

**Economic Opportunities:**
• Material recovery value
• Circular economy benefits
• Job creation potential
• Market developments

Please let me know which aspect interests you, and I'll provide detailed information tailored to your needs.`
